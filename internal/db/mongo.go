package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client   *mongo.Client
	Database *mongo.Database
)

func InitMongo() error {

	host := os.Getenv("MONGO_HOST")
	port := os.Getenv("MONGO_PORT")
	user := os.Getenv("MONGO_USER")
	password := os.Getenv("MONGO_PASSWORD")
	dbname := os.Getenv("MONGO_DB")
	if dbname == "" {
		dbname = "scoutline"
	}

	var uri string
	if user != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s", user, password, host, port)
	} else {
		uri = fmt.Sprintf("mongodb://%s:%s", host, port)
	}

	var err error

	for i := 0; i < 10; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			err = Client.Ping(ctx, readpref.Primary())
		}
		cancel()
		if err == nil {
			Database = Client.Database(dbname)
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}

// Ping verifies the store is reachable, used by the health check
func Ping(ctx context.Context) error {
	if Client == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return Client.Ping(ctx, readpref.Primary())
}
