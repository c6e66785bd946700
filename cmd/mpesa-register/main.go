package main

// One-shot utility that registers the C2B confirmation and validation
// callback URLs with the payment provider. Run it once per environment
// after deploying the backend; it never runs in the request path.

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/jazahq/jaza-backend/internal/pkg/config"
	"github.com/jazahq/jaza-backend/internal/pkg/mpesa"
)

func main() {
	configPath := config.GetEnv("CONFIG_PATH", ".env")
	configs := config.InitConfig(configPath)

	if configs.Mpesa.ConsumerKey == "" || configs.Mpesa.ConsumerSecret == "" {
		log.Fatal("MPESA_CONSUMER_KEY and MPESA_CONSUMER_SECRET are required")
	}
	if configs.Mpesa.ShortCode == "" || configs.Mpesa.CallbackBaseURL == "" {
		log.Fatal("MPESA_SHORTCODE and MPESA_CALLBACK_BASE_URL are required")
	}

	client := mpesa.NewClient(configs.Mpesa)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := client.RegisterC2BURLs(ctx)
	if err != nil {
		log.Fatalf("Failed to register C2B URLs: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Fatalf("Failed to print response: %v", err)
	}

	log.Println("C2B URLs registered successfully")
}
