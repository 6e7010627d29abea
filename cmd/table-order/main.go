package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"table-order/internal/common/httpx"
	"table-order/internal/common/logger"
	"table-order/internal/domain"
	"table-order/internal/events"
	"table-order/internal/httpapi"
	"table-order/internal/kitchen"
	"table-order/internal/menu"
	"table-order/internal/ordering"
	"table-order/internal/qrlink"
	"table-order/internal/service"
	"table-order/internal/storage"
)

func main() {
	mode := flag.String("mode", "", "server | kitchen | order | qr")
	addr := flag.String("addr", ":8080", "server: listen address")
	dbDSN := flag.String("db-dsn", "", "server: postgres DSN; empty keeps orders in memory")
	amqpURL := flag.String("amqp-url", "", "server: RabbitMQ URL for order events; empty disables publishing")
	api := flag.String("api", "http://localhost:8080", "kitchen/order: order service base URL")
	interval := flag.Duration("interval", kitchen.DefaultPollInterval, "kitchen: poll interval")
	baseURL := flag.String("base-url", "http://localhost:8080", "qr: public base URL of the ordering entry point")
	table := flag.String("table", "", "order/qr: table identifier")
	items := flag.String("items", "", `order: menu item id:qty pairs, e.g. "1:2,8:1"`)
	notes := flag.String("notes", "", "order: special instructions")
	size := flag.Int("size", 256, "qr: QR image size in pixels")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch *mode {
	case "server":
		err = runServer(ctx, *addr, *dbDSN, *amqpURL)
	case "kitchen":
		err = runKitchen(ctx, *api, *interval)
	case "order":
		err = runOrder(ctx, *api, *table, *items, *notes)
	case "qr":
		err = runQR(*baseURL, *table, *size)
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: server | kitchen | order | qr")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(ctx context.Context, addr, dbDSN, amqpURL string) error {
	lg := logger.New("order-service")
	defer lg.Sync()

	var store storage.OrderStore
	if dbDSN != "" {
		pg, err := storage.NewPostgresStore(ctx, dbDSN)
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			return err
		}
		store = pg
		lg.Info("store_ready", zap.String("backend", "postgres"))
	} else {
		store = storage.NewMemoryStore()
		lg.Info("store_ready", zap.String("backend", "memory"))
	}

	var pub events.Publisher = events.Nop{}
	if amqpURL != "" {
		rabbit, err := events.DialRabbit(amqpURL)
		if err != nil {
			return err
		}
		defer rabbit.Close()
		pub = rabbit
		lg.Info("event_publisher_ready")
	}

	svc := service.NewOrderService(store, pub, lg)
	h := httpapi.New(svc, lg)
	lg.Info("service_started", zap.String("addr", addr))
	return httpx.New(addr, h.Routes()).Run(ctx)
}

func runKitchen(ctx context.Context, api string, interval time.Duration) error {
	dash := kitchen.NewDashboard(kitchen.NewClient(api))
	dash.Watch(ctx, interval, printDashboard)
	return nil
}

func printDashboard(orders []domain.Order, errMsg string) {
	fmt.Printf("\n=== Kitchen Dashboard — %d total orders ===\n", len(orders))
	if errMsg != "" {
		fmt.Printf("!! %s\n", errMsg)
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return
	}
	now := time.Now()
	for _, o := range orders {
		fmt.Printf("%s  [%s]  %s • %s\n", o.TableID, o.Status,
			kitchen.FormatTime(o.CreatedAt), kitchen.ElapsedLabel(o.CreatedAt, now))
		for _, it := range o.Items {
			fmt.Printf("    %dx %s\n", it.Qty, it.Name)
		}
		if o.Instructions != "" {
			fmt.Printf("    note: %s\n", o.Instructions)
		}
		fmt.Printf("    total: UGX %.0f  (id %s)\n", o.Total, o.ID)
	}
}

func runOrder(ctx context.Context, api, table, items, notes string) error {
	if table == "" {
		return fmt.Errorf("--table is required for order mode")
	}
	cart, err := buildCart(items)
	if err != nil {
		return err
	}
	orderID, err := ordering.NewClient(api).Submit(ctx, table, cart, notes)
	if err != nil {
		return err
	}
	fmt.Printf("Order placed successfully: %s (total UGX %.0f)\n", orderID, cart.Total())
	return nil
}

// buildCart resolves "id:qty" pairs against the menu catalog.
func buildCart(spec string) (*ordering.Cart, error) {
	cart := ordering.NewCart()
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, qtyStr, found := strings.Cut(pair, ":")
		qty := 1
		if found {
			n, err := strconv.Atoi(qtyStr)
			if err != nil {
				return nil, fmt.Errorf("invalid quantity in %q", pair)
			}
			qty = n
		}
		item, ok := menu.ByID(id)
		if !ok {
			return nil, fmt.Errorf("unknown menu item id %q", id)
		}
		cart.Add(item, qty)
	}
	return cart, nil
}

func runQR(baseURL, table string, size int) error {
	tables := []string{table}
	if table == "" {
		tables = qrlink.PredefinedTables
	}
	for _, t := range tables {
		link := qrlink.MenuURL(baseURL, t)
		fmt.Printf("%s\n  menu: %s\n  qr:   %s\n", t, link, qrlink.ImageURL(link, size))
	}
	return nil
}
