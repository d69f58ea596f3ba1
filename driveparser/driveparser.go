package driveparser

import (
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v2"
	"google.golang.org/api/option"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WatchTTL is how long a push channel stays registered.
const WatchTTL = 24 * time.Hour

func GetClient(ctx context.Context, credsFile string) (*http.Client, error) {
	b, err := os.ReadFile(credsFile)
	if err != nil {
		return nil, errors.Wrap(err, "read drive credentials")
	}
	config, err := google.JWTConfigFromJSON(b, drive.DriveReadonlyScope)
	if err != nil {
		return nil, errors.Wrap(err, "parse drive credentials")
	}
	return config.Client(ctx), nil
}

func GetService(ctx context.Context, client *http.Client) (*drive.Service, error) {
	service, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, errors.Wrap(err, "drive service")
	}
	return service, nil
}

// DownloadFile exports a Google Sheet as xlsx and returns the workbook bytes.
func DownloadFile(service *drive.Service, fileId string) ([]byte, error) {
	r, err := service.Files.Export(fileId, xlsxMimeType).Download()
	if err != nil {
		return nil, errors.Wrapf(err, "export %s", fileId)
	}
	data, err := readBody(r.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "download %s", fileId)
	}
	return data, nil
}

func readBody(body io.ReadCloser) ([]byte, error) {
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			log.Println(err)
		}
	}(body)
	return io.ReadAll(body)
}

// WatchFile asks Drive to post change notifications for fileId to address.
func WatchFile(service *drive.Service, fileId string, address string) (*drive.Channel, error) {
	channel := newChannel(address, time.Now())
	ch, err := service.Files.Watch(fileId, channel).SupportsAllDrives(true).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "watch %s", fileId)
	}
	return ch, nil
}

func newChannel(address string, now time.Time) *drive.Channel {
	return &drive.Channel{
		Address:    address,
		Type:       "web_hook",
		Id:         uuid.New().String(),
		Expiration: now.UTC().Add(WatchTTL).UnixMilli(),
	}
}
