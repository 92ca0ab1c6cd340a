package libs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/gomail.v2"

	"tourist-safety/config"
	"tourist-safety/mocks"
	"tourist-safety/models"
)

func TestObjectKey(t *testing.T) {
	key := objectKey("profiles", "Me At The Beach.JPG")
	assert.True(t, strings.HasPrefix(key, "profiles/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, objectKey("profiles", "Me At The Beach.JPG"))

	assert.NotContains(t, objectKey("", "a.png"), "/")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", contentType("a.PNG"))
	assert.Equal(t, "application/octet-stream", contentType("a"))
}

func TestLocalStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads/")

	stored, err := store.Save(context.Background(), "profiles", models.Upload{
		Filename: "me.png",
		Size:     4,
		Content:  strings.NewReader("data"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.URL, "/uploads/profiles/"))
	assert.Equal(t, "/uploads/"+stored.Key, stored.URL)

	content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(stored.Key)))
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))

	require.NoError(t, store.Delete(context.Background(), stored.Key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(stored.Key)))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	assert.NoError(t, store.Delete(context.Background(), stored.Key), "deleting twice is not an error")
	assert.NoError(t, store.Delete(context.Background(), ""))
	assert.Error(t, store.Delete(context.Background(), "../etc/passwd"))
}

func TestNewPhotoStore(t *testing.T) {
	store, err := NewPhotoStore(context.Background(), &config.Config{PhotoStore: "local", UploadDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	_, err = NewPhotoStore(context.Background(), &config.Config{PhotoStore: "ftp"})
	assert.Error(t, err)

	_, err = NewPhotoStore(context.Background(), &config.Config{PhotoStore: "cloudinary"})
	assert.Error(t, err)
}

func TestS3PublicURL(t *testing.T) {
	s := &S3Store{bucket: "photos", region: "eu-west-1"}
	assert.Equal(t, "https://photos.s3.eu-west-1.amazonaws.com/profiles/a.png", s.PublicURL("profiles/a.png"))

	s.publicBase = "https://cdn.example.com/"
	assert.Equal(t, "https://cdn.example.com/profiles/a.png", s.PublicURL("profiles/a.png"))
}

func TestMinioPublicURL(t *testing.T) {
	s := &MinioStore{bucket: "photos", host: "minio:9000"}
	assert.Equal(t, "http://minio:9000/photos/k.png", s.PublicURL("k.png"))

	s.useSSL = true
	assert.Equal(t, "https://minio:9000/photos/k.png", s.PublicURL("k.png"))

	s.baseURL = "https://files.example.com"
	assert.Equal(t, "https://files.example.com/k.png", s.PublicURL("k.png"))
}

func TestMultiNotifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockNotifier(ctrl)
	second := mocks.NewMockNotifier(ctrl)
	alert := models.SOSAlert{Incident: models.Incident{ID: 1}}

	first.EXPECT().NotifySOS(gomock.Any(), alert).Return(errors.New("redis down"))
	second.EXPECT().NotifySOS(gomock.Any(), alert).Return(nil)

	err := NewMultiNotifier(first, second).NotifySOS(context.Background(), alert)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")

	assert.NoError(t, NewMultiNotifier().NotifyAuthorityPending(context.Background(), models.AuthorityProfile{}))
}

type fakePublisher struct {
	channel string
	payload []byte
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.payload, _ = message.([]byte)
	return redis.NewIntResult(1, f.err)
}

func TestRedisNotifierPublishesEvent(t *testing.T) {
	pub := &fakePublisher{}
	n := NewRedisNotifier(pub, "sos-alerts")

	alert := models.SOSAlert{
		Incident:    models.Incident{ID: 9, Title: "SOS Alert", Lat: 1.5, Lng: 2.5},
		TouristName: "Jane Roe",
	}
	require.NoError(t, n.NotifySOS(context.Background(), alert))
	assert.Equal(t, "sos-alerts", pub.channel)

	var event struct {
		Type string          `json:"type"`
		Data models.SOSAlert `json:"data"`
	}
	require.NoError(t, json.Unmarshal(pub.payload, &event))
	assert.Equal(t, EventSOSAlert, event.Type)
	assert.Equal(t, 9, event.Data.ID)
	assert.Equal(t, "Jane Roe", event.Data.TouristName)

	pub.err = errors.New("connection refused")
	assert.Error(t, n.NotifyAuthorityPending(context.Background(), models.AuthorityProfile{}))
}

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestMailNotifier(t *testing.T) {
	sender := &fakeSender{}
	n := newMailNotifier(sender, "alerts@example.com", "ops@example.com")

	alert := models.SOSAlert{
		Incident:    models.Incident{ID: 3, Title: "SOS Alert", CreatedAt: time.Now()},
		TouristName: "Jane Roe",
	}
	require.NoError(t, n.NotifySOS(context.Background(), alert))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"ops@example.com"}, sender.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"SOS Alert #3 - Jane Roe"}, sender.sent[0].GetHeader("Subject"))

	sender.err = errors.New("smtp timeout")
	err := n.NotifyAuthorityPending(context.Background(), models.AuthorityProfile{AgencyName: "City Police"})
	assert.ErrorContains(t, err, "smtp timeout")
}

func TestNewMailNotifierRequiresConfig(t *testing.T) {
	_, err := NewMailNotifier(&config.Config{})
	assert.Error(t, err)

	_, err = NewMailNotifier(&config.Config{SMTPHost: "smtp", SMTPUser: "u", SMTPPass: "p"})
	assert.Error(t, err)

	n, err := NewMailNotifier(&config.Config{SMTPHost: "smtp", SMTPPort: 587, SMTPUser: "u", SMTPPass: "p", AlertEmailTo: "ops@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "u", n.from)
}

func TestNewRedisClientDisabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), &config.Config{})
	assert.NoError(t, err)
	assert.Nil(t, client)

	_, err = NewRedisClient(context.Background(), &config.Config{RedisURL: "://bad"})
	assert.Error(t, err)
}
