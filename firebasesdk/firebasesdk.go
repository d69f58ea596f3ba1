package firebasesdk

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"timetable_ingest/model"
)

// Realtime Database paths written by SendData.
const (
	TimetableRef = "timetable"
	FreeSlotsRef = "freeSlots"
	ResitsRef    = "resits"
)

type Config struct {
	DatabaseURL     string
	CredentialsFile string
}

// SendData replaces the published timetable, free slots and resits.
// An empty resit list is written as well so stale resits disappear.
func SendData(ctx context.Context, cfg Config, data *model.Dataset) error {
	conf := &firebase.Config{
		DatabaseURL: cfg.DatabaseURL,
	}

	opt := option.WithCredentialsFile(cfg.CredentialsFile)
	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return errors.Wrap(err, "firebase app")
	}

	client, err := app.Database(ctx)
	if err != nil {
		return errors.Wrap(err, "firebase database")
	}

	for _, ref := range refs(data) {
		if err := client.NewRef(ref.path).Set(ctx, ref.value); err != nil {
			return errors.Wrapf(err, "set %s", ref.path)
		}
	}

	log.Printf("Done! %d entries, %d free slots, %d resits put to db", len(data.Entries), len(data.FreeSlots), len(data.Resits))
	return nil
}

type refValue struct {
	path  string
	value interface{}
}

func refs(data *model.Dataset) []refValue {
	resits := data.Resits
	if resits == nil {
		resits = []model.ResitEntry{}
	}
	return []refValue{
		{TimetableRef, data.Entries},
		{FreeSlotsRef, data.FreeSlots},
		{ResitsRef, resits},
	}
}
