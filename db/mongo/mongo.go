package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// appName shows up in the server logs and currentOp output, which is how we
// tell this service's connections apart from ad-hoc shell sessions.
const appName = "lightbill"

// MongoDB holds the shared client the repositories read collections from.
type MongoDB struct {
	Client *mongo.Client
	Ctx    context.Context
	Cancel context.CancelFunc
	URL    string
}

func NewMongoDB(url string) *MongoDB {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	return &MongoDB{
		Ctx:    ctx,
		Cancel: cancel,
		URL:    url,
	}
}

// Connect dials the cluster and pings it so a bad URL fails at startup
// instead of on the first request.
func (m *MongoDB) Connect() error {
	opts := options.Client().ApplyURI(m.URL).SetAppName(appName)
	client, err := mongo.Connect(m.Ctx, opts)
	if err != nil {
		return err
	}
	m.Client = client
	return m.Client.Ping(m.Ctx, nil)
}

func (m *MongoDB) Disconnect() error {
	m.Cancel()
	return m.Client.Disconnect(m.Ctx)
}

func (m *MongoDB) GetContext() context.Context {
	return m.Ctx
}
