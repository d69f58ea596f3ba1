package main

import (
	"context"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"google.golang.org/api/drive/v2"

	"timetable_ingest/csvexport"
	"timetable_ingest/driveparser"
	"timetable_ingest/firebasesdk"
	"timetable_ingest/model"
	"timetable_ingest/resitparser"
	"timetable_ingest/sheetparser"
	"timetable_ingest/siteparser"
)

const (
	timetableFile = "timetable"
	resitFile     = "resit"
)

var files map[string][]byte
var mutex *sync.Mutex
var service *drive.Service
var watchedAt time.Time

// Usage:
//
//	timetable_ingest                          refresh loop, publishes to Firebase
//	timetable_ingest timetable.xlsx [resit]   parse local files into OUTPUT_DIR (default ".")
func main() {
	files = make(map[string][]byte)
	mutex = &sync.Mutex{}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	if len(os.Args) > 1 {
		if err := parseLocal(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	for {
		err := updateDb(ctx, cfg)
		if err != nil {
			log.Println(err)
		}

		time.Sleep(cfg.RefreshInterval)
	}
}

func parseLocal(paths []string) error {
	for i, name := range []string{timetableFile, resitFile} {
		if i >= len(paths) {
			break
		}
		data, err := os.ReadFile(paths[i])
		if err != nil {
			return err
		}
		files[name] = data
	}
	data, err := prepareData(files, sheetparser.NewParser())
	if err != nil {
		return err
	}
	dir := os.Getenv("OUTPUT_DIR")
	if dir == "" {
		dir = "."
	}
	return csvexport.WriteDataset(dir, data)
}

func updateDb(ctx context.Context, cfg config) error {
	defer maps.Clear(files)

	client, err := driveparser.GetClient(ctx, cfg.DriveCredentialsFile)
	if err != nil {
		return err
	}
	service, err = driveparser.GetService(ctx, client)
	if err != nil {
		return err
	}

	doc, err := siteparser.GetWebPage(ctx, cfg.TimetablePageURL)
	if err != nil {
		return err
	}
	src, err := siteparser.ParseWebPage(doc)
	if err != nil {
		return err
	}
	log.Printf("sources: timetable=%s resit=%s", src.TimetableId, src.ResitId)

	if err := getFiles(src); err != nil {
		return err
	}
	data, err := prepareData(files, sheetparser.NewParser())
	if err != nil {
		return err
	}

	if cfg.OutputDir != "" {
		if err := csvexport.WriteDataset(cfg.OutputDir, data); err != nil {
			log.Println(err)
		}
	}
	if err := firebasesdk.SendData(ctx, cfg.Firebase, data); err != nil {
		return err
	}

	if cfg.WatchAddress != "" && time.Since(watchedAt) > driveparser.WatchTTL {
		ch, err := driveparser.WatchFile(service, src.TimetableId, cfg.WatchAddress)
		if err != nil {
			log.Println(err)
		} else {
			watchedAt = time.Now()
			log.Printf("watching %s on channel %s", src.TimetableId, ch.Id)
		}
	}
	return nil
}

func getFiles(src siteparser.Sources) error {
	ids := map[string]string{timetableFile: src.TimetableId}
	if src.ResitId != "" {
		ids[resitFile] = src.ResitId
	}

	w := &sync.WaitGroup{}
	errs := make([]error, 0, len(ids))
	for name, id := range ids {
		w.Add(1)
		go func(name string, id string) {
			defer w.Done()
			data, err := driveparser.DownloadFile(service, id)
			mutex.Lock()
			defer mutex.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			files[name] = data
		}(name, id)
	}
	w.Wait()
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// prepareData parses the downloaded files. The timetable and its free slots
// are computed concurrently. A rejected resit table is logged and left out so
// the timetable still publishes.
func prepareData(files map[string][]byte, parser *sheetparser.Parser) (*model.Dataset, error) {
	timetable, ok := files[timetableFile]
	if !ok {
		return nil, errors.New("no timetable downloaded")
	}

	data := &model.Dataset{}
	var entriesErr, slotsErr error
	w := &sync.WaitGroup{}
	w.Add(2)
	go func() {
		defer w.Done()
		data.Entries, entriesErr = parser.ParseSchedule(timetable)
	}()
	go func() {
		defer w.Done()
		data.FreeSlots, slotsErr = parser.ComputeFreeSlots(timetable)
	}()
	w.Wait()
	if entriesErr != nil {
		return nil, entriesErr
	}
	if slotsErr != nil {
		return nil, slotsErr
	}

	if resit, ok := files[resitFile]; ok {
		resits, err := resitparser.ParseResitSchedule(resit)
		if err != nil {
			log.Printf("resit schedule rejected: %v", err)
		} else {
			data.Resits = resits
		}
	}
	return data, nil
}
