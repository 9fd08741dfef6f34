package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"bitbucket.org/novatechnologies/chartview/api/http"
	"bitbucket.org/novatechnologies/chartview/api/http/handler"
	"bitbucket.org/novatechnologies/chartview/chart"
	"bitbucket.org/novatechnologies/chartview/client/feed"
	"bitbucket.org/novatechnologies/chartview/domain"
	"bitbucket.org/novatechnologies/chartview/engine/remote"
	"bitbucket.org/novatechnologies/chartview/infra"
	"bitbucket.org/novatechnologies/chartview/infra/broker"
	"bitbucket.org/novatechnologies/chartview/infra/mongo"
	"bitbucket.org/novatechnologies/chartview/snapshot"
)

func main() {
	ctx, cancel := context.WithCancel(infra.GetContext())
	defer cancel()
	conf := infra.SetConfig(ctx, "./config/.env")

	eventsBroker := broker.NewInMemory()

	mongoDbClient, err := mongo.NewMongoClient(ctx, conf.MongoDbConfig)
	if err != nil {
		log.Fatal("can't connect to mongo: " + err.Error())
	}
	snapshotCollection := mongo.InitSnapshotsCollection(ctx, mongoDbClient, conf.MongoDbConfig)

	feedClient, err := feed.New(feed.Config{
		ServerURL: conf.FeedConfig.ServerURL,
		Token:     conf.FeedConfig.Token,
	})
	if err != nil {
		log.Fatal("can't feed.New: " + err.Error())
	}
	snapshots := snapshot.NewService(feedClient, snapshot.NewRepository(snapshotCollection))
	snapshots.SetSelection(
		conf.FeedConfig.Symbol,
		domain.Resolution(conf.FeedConfig.Resolution),
	)

	wsClient, err := remote.NewWSClient(conf.CentrifugoConfig, eventsBroker)
	if err != nil {
		log.Fatal("can't remote.NewWSClient: " + err.Error())
	}
	if err := wsClient.Connect(); err != nil {
		log.Fatal("can't connect to centrifugo: " + err.Error())
	}

	factory := remote.NewFactory(
		remote.NewCentrifugoPublisher(conf.CentrifugoConfig),
		eventsBroker,
	)
	container := remote.NewContainer(eventsBroker, conf.ChartConfig.ViewportWidth)

	controller := chart.NewController(factory)
	if err := controller.Mount(container); err != nil {
		log.Fatal("can't mount chart: " + err.Error())
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		snapshots.Watch(
			ctx,
			time.Duration(conf.FeedConfig.PollInterval)*time.Second,
			controller.SetCandles,
		)
		return nil
	})

	server := http.NewServer(
		handler.NewViewHandler(controller, snapshots),
		handler.NewCandleHandler(snapshots),
		conf.HttpConfig.Port,
	)
	server.Start(ctx)

	// shutdown
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt)

	<-signalCh

	server.Stop(ctx)
	cancel()
	_ = group.Wait()

	controller.Unmount()
	container.Close()
	_ = wsClient.Close()
	_ = mongoDbClient.Disconnect(context.Background())
}
