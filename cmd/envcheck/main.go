// Command envcheck verifies connectivity to every external service the API
// depends on, using the same .env configuration the server reads.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/cloudinary/cloudinary-go/v2"
	"google.golang.org/api/option"

	"github.com/homehub-app/homehub/internal/config"
	"github.com/homehub-app/homehub/internal/database"
)

func main() {
	cfg := config.Load()

	fmt.Println("Testing MongoDB connection...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("MongoDB connection failed: ", err)
	}
	defer db.Disconnect(ctx)
	fmt.Println("MongoDB ok")

	if cfg.FirebaseCredentialsFile != "" {
		fmt.Println("Testing Firebase messaging...")
		app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
		if err != nil {
			log.Fatal("Firebase initialization failed: ", err)
		}
		if _, err := app.Messaging(ctx); err != nil {
			log.Fatal("Firebase messaging client failed: ", err)
		}
		fmt.Println("Firebase ok")
	} else {
		fmt.Println("Firebase credentials not configured, skipping")
	}

	if cfg.CloudinaryCloudName != "" {
		fmt.Println("Testing Cloudinary...")
		url := fmt.Sprintf("cloudinary://%s:%s@%s", cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryCloudName)
		if _, err := cloudinary.NewFromURL(url); err != nil {
			log.Fatal("Cloudinary initialization failed: ", err)
		}
		fmt.Println("Cloudinary ok")
	} else {
		fmt.Println("Cloudinary credentials not configured, skipping")
	}

	if cfg.StripeSecretKey == "" {
		fmt.Println("Stripe secret key not configured, billing endpoints will fail")
	} else {
		fmt.Println("Stripe key present")
	}

	fmt.Println("Done")
}
