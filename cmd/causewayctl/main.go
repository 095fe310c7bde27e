// causewayctl is the operations CLI: seeding sample content and promoting
// accounts without going through the HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/causewayhq/causeway/internal/app/system/normalize"
	"github.com/causewayhq/causeway/internal/domain/models"
)

var (
	mongoURI string
	dbName   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&mongoURI, "mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
	rootCmd.PersistentFlags().StringVar(&dbName, "db", "causeway", "Database name")

	seedCmd.Flags().BoolVar(&destroy, "destroy", false, "Drop existing content collections before seeding")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(promoteCmd)
}

var rootCmd = &cobra.Command{
	Use:   "causewayctl",
	Short: "Operations CLI for the Causeway backend",
}

var promoteCmd = &cobra.Command{
	Use:   "promote-user [email]",
	Short: "Promote an existing account to admin",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, db, disconnect := connect()
		defer disconnect()

		if err := promoteUser(ctx, db, args[0]); err != nil {
			log.Fatalf("promote-user: %v", err)
		}
		fmt.Printf("promoted %s to admin\n", args[0])
	},
}

var destroy bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample content for local development",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, db, disconnect := connect()
		defer disconnect()

		if destroy {
			if err := dropContent(ctx, db); err != nil {
				log.Fatalf("seed --destroy: %v", err)
			}
			fmt.Println("dropped existing content collections")
		}

		if err := seed(ctx, db); err != nil {
			log.Fatalf("seed: %v", err)
		}
		fmt.Println("seeded sample content")
	},
}

func connect() (context.Context, *mongo.Database, func()) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		cancel()
		log.Fatalf("connecting to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		cancel()
		log.Fatalf("pinging MongoDB: %v", err)
	}

	return ctx, client.Database(dbName), func() {
		_ = client.Disconnect(ctx)
		cancel()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// contentCollections are the ones seed touches. Users are deliberately
// excluded so --destroy never wipes accounts.
var contentCollections = []string{"projects", "news", "partners", "programs", "themes"}

func dropContent(ctx context.Context, db *mongo.Database) error {
	for _, name := range contentCollections {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("dropping %s: %w", name, err)
		}
	}
	return nil
}

func promoteUser(ctx context.Context, db *mongo.Database, email string) error {
	// The store lowercases emails on write, so match the stored form.
	email = normalize.Email(email)
	res, err := db.Collection("users").UpdateOne(ctx,
		map[string]any{"email": email},
		map[string]any{"$set": map[string]any{
			"role":       models.RoleAdmin,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no account with email %q", email)
	}
	return nil
}
