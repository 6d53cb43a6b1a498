package main

import (
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dot5enko/simple-stats-db/io"
	"github.com/dot5enko/simple-stats-db/schema"
	"github.com/dot5enko/simple-stats-db/server"
	"github.com/dot5enko/simple-stats-db/store"
	"github.com/urfave/cli/v2"
)

var storageFlag = &cli.StringFlag{
	Name:  "storage",
	Value: "./storage",
	Usage: "path to the storage folder",
}

var segmentRowsFlag = &cli.IntFlag{
	Name:  "segment-rows",
	Value: store.DefaultSegmentCapacity,
	Usage: "rows buffered per series before a segment is sealed",
}

var listenFlag = &cli.StringFlag{
	Name:  "listen",
	Value: ":8080",
	Usage: "http listen address",
}

func main() {

	app := &cli.App{
		Name:  "simple-stats-db",
		Usage: "disk backed numeric series store with single-pass min/max bounds",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the http api",
				Flags:  []cli.Flag{storageFlag, segmentRowsFlag, listenFlag},
				Action: serveAction,
			},
			{
				Name:   "demo",
				Usage:  "ingest random data and query it back",
				Flags:  []cli.Flag{storageFlag, segmentRowsFlag},
				Action: demoAction,
			},
		},
	}

	if runErr := app.Run(os.Args); runErr != nil {
		log.Fatal(runErr)
	}
}

func openStore(ctx *cli.Context) (*store.Store, error) {
	return store.New(store.Config{
		PathToStorage:   ctx.String("storage"),
		SegmentCapacity: ctx.Int("segment-rows"),
	})
}

func serveAction(ctx *cli.Context) error {

	m, storeErr := openStore(ctx)
	if storeErr != nil {
		return storeErr
	}

	defer m.Close()

	srv := server.New(m)

	log.Printf("listening on %s, storage at %s", ctx.String("listen"), ctx.String("storage"))

	return http.ListenAndServe(ctx.String("listen"), srv.Handler())
}

func demoAction(ctx *cli.Context) error {

	m, storeErr := openStore(ctx)
	if storeErr != nil {
		return storeErr
	}

	seriesName := "health_checks"

	createErr := m.CreateSeries(seriesName, schema.Uint64FieldType)
	if createErr != nil && !errors.Is(createErr, store.ErrSeriesExists) {
		return createErr
	}

	size := 40000

	data := make([]float64, size)
	rawDump := make([]uint64, size)

	for i := 0; i < size; i++ {
		val := rand.Int63n(50000)
		data[i] = float64(val)
		rawDump[i] = uint64(val)
	}

	log.Printf("generated %d items ", size)

	dumpErr := io.DumpNumbersArrayBlock(filepath.Join(ctx.String("storage"), "demo_input.bin"), rawDump)
	if dumpErr != nil {
		return dumpErr
	}

	if appendErr := m.Append(seriesName, data); appendErr != nil {
		return appendErr
	}

	bounds, boundsErr := m.Bounds(seriesName)
	if boundsErr != nil {
		return boundsErr
	}

	log.Printf("bounds of %s : %.2f <-> %.2f", seriesName, bounds.Min, bounds.Max)

	count, countErr := m.CountInRange(seriesName, 1024, 8192)
	if countErr != nil {
		return countErr
	}

	log.Printf("values in [1024, 8192) : %d", count)

	return m.Close()
}
