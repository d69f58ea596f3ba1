package main

import (
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"timetable_ingest/sheetparser"
)

func timetableWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	cells := map[string]string{"A1": "MASTER TIMETABLE", "A6": "A101", "E6": "CE 151\nDr. Mensah"}
	for axis, v := range cells {
		if err := f.SetCellValue("Sheet1", axis, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SetSheetName("Sheet1", "Monday"); err != nil {
		t.Fatal(err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const resitCSV = "DATE,COURSE NO.,COURSE NAME,DEPARTMENT,NUMBER,ROOM,EXAMINER,SESSION\n" +
	"12th-MAR-2024,CE 151,Programming,Computer Science,25,A101,Dr. Mensah,M\n"

func TestPrepareData(t *testing.T) {
	parser := sheetparser.NewParser(sheetparser.WithLogger(log.New(io.Discard, "", 0)))

	tests := []struct {
		name       string
		files      map[string][]byte
		wantErr    error
		wantResits int
	}{
		{
			name:       "timetable and resits",
			files:      map[string][]byte{timetableFile: timetableWorkbook(t), resitFile: []byte(resitCSV)},
			wantResits: 1,
		},
		{
			name:       "rejected resits are left out",
			files:      map[string][]byte{timetableFile: timetableWorkbook(t), resitFile: []byte(resitCSV + "bad,row\n")},
			wantResits: 0,
		},
		{
			name:    "broken timetable",
			files:   map[string][]byte{timetableFile: []byte("nope")},
			wantErr: sheetparser.ErrParseFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := prepareData(tt.files, parser)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("prepareData() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(data.Entries) != 1 {
				t.Errorf("got %d entries, want 1", len(data.Entries))
			}
			if len(data.FreeSlots) != sheetparser.SlotCount-1 {
				t.Errorf("got %d free slots, want %d", len(data.FreeSlots), sheetparser.SlotCount-1)
			}
			if len(data.Resits) != tt.wantResits {
				t.Errorf("got %d resits, want %d", len(data.Resits), tt.wantResits)
			}
		})
	}

	if _, err := prepareData(map[string][]byte{}, parser); err == nil {
		t.Error("prepareData(no files) error = nil, want error")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TIMETABLE_PAGE_URL", "https://example.edu/timetable")
	t.Setenv("DATABASE_URL", "https://timetable.firebaseio.com")
	t.Setenv("CREDENTIALS_FILE", "firebase.json")
	t.Setenv("DRIVE_CREDENTIALS_FILE", "")
	t.Setenv("REFRESH_INTERVAL", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DriveCredentialsFile != "creds.json" {
		t.Errorf("DriveCredentialsFile = %q, want creds.json", cfg.DriveCredentialsFile)
	}
	if cfg.RefreshInterval != 10*time.Minute {
		t.Errorf("RefreshInterval = %v, want 10m", cfg.RefreshInterval)
	}

	t.Setenv("REFRESH_INTERVAL", "soon")
	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() with bad interval error = nil")
	}

	t.Setenv("REFRESH_INTERVAL", "5m")
	t.Setenv("DATABASE_URL", " ")
	var cfgErr *configError
	if _, err := loadConfig(); !errors.As(err, &cfgErr) {
		t.Errorf("loadConfig() error = %v, want *configError", err)
	}
}
