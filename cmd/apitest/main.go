package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/mkarlin/orderwatch/internal/api"
)

// One-shot probe of the upstream endpoint: fetch the current batch once
// and print it. Useful for eyeballing the envelope before pointing the
// collector at it.
func main() {
	url := flag.String("url", "https://app.nash.io", "upstream base URL")
	flag.Parse()

	client := api.NewClient(*url, api.WithTimeout(30*time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Println("=== Testing LatestOrders ===")
	orders, err := client.LatestOrders(ctx)
	if err != nil {
		log.Fatalf("LatestOrders failed: %v", err)
	}

	fmt.Printf("Fetched %d distinct orders\n", orders.Len())
	i := 1
	for o := range orders {
		fmt.Printf("  %d. %s\n", i, o)
		i++
	}
}
