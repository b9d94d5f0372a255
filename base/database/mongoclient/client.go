package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/marketplace/base/log"
)

const (
	mgSocketTimeout = 60 * time.Second
	pingTimeout     = 3 * time.Second
)

// Client wraps mongo.Client
type Client struct {
	DbName string
	*mongo.Client
}

// Config for ConnectMongoClient
type Config struct {
	URI        string
	AuthDBName string
	DBName     string
	SSL        bool
	// SetSafe waits for majority write concern, required by transactions on a replica set
	SetSafe            bool
	PoolSizeMultiplier float64
}

// MustConnectMongoClient panics if the connection fails
func MustConnectMongoClient(cfg Config) *Client {
	cli, err := ConnectMongoClient(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": cfg.URI, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient returns mongo driver client
func ConnectMongoClient(cfg Config) (*Client, error) {
	ctx := context.Background()
	connSetting, err := connstring.Parse(cfg.URI)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"mongoURI": cfg.URI,
			"dbName":   cfg.DBName,
			"err":      err,
		}).Error("fail to parse connstring")
		return nil, err
	}

	clientOpts := options.Client().ApplyURI(cfg.URI).SetSocketTimeout(mgSocketTimeout)

	if connSetting.Username != "" && connSetting.AuthSource == "" && cfg.AuthDBName != "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              cfg.AuthDBName,
		})
	}

	multiplier := cfg.PoolSizeMultiplier
	if multiplier <= 0 {
		multiplier = 8
	}
	// pool size is per host
	poolSize := int(float64(runtime.NumCPU()) * multiplier)
	poolSize = (poolSize + len(connSetting.Hosts) - 1) / len(connSetting.Hosts)
	clientOpts.SetMinPoolSize(uint64(poolSize / 4))
	clientOpts.SetMaxPoolSize(uint64(poolSize))
	log.Log().WithField("poolSize", poolSize).Info("mongo driver pool size")

	if cfg.SSL {
		clientOpts.SetTLSConfig(&tls.Config{})
	}
	if cfg.SetSafe {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	clientOpts.SetRetryWrites(true)

	client, err := mongo.NewClient(clientOpts)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     cfg.DBName,
			"err":        err,
		}).Error("fail to create mongo client")
		return nil, err
	}

	if err := client.Connect(ctx); err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     cfg.DBName,
			"err":        err,
		}).Error("fail to connect mongo db")
		return nil, err
	}

	if _, err := client.Database(cfg.DBName).ListCollectionNames(ctx, bson.D{}); err != nil {
		log.Log().WithFields(log.Fields{
			"mongoHosts": connSetting.Hosts,
			"dbName":     cfg.DBName,
			"err":        err,
		}).Error("fail to test mongo db")
		return nil, err
	}

	log.Log().WithFields(log.Fields{
		"mongoHosts": connSetting.Hosts,
		"db":         cfg.DBName,
	}).Info("mongo connected")
	return &Client{
		Client: client,
		DbName: cfg.DBName,
	}, nil
}

// Ping checks the primary is reachable
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.Client.Ping(ctx, readpref.Primary())
}
