// Package archive exports a game day's Attack Events to object storage as
// JSON lines.
package archive

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/vaultsiege/internal/clock"
	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	sc "github.com/dmitrijs2005/vaultsiege/internal/server/config"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/repomanager"
)

const contentType = "application/x-ndjson"

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		_, err := c.PutObject(ctx, in)
		return err
	}

	presignGetObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return s3.NewPresignClient(c).PresignGetObject(ctx, in, optFns...)
	}
)

// Result describes one archived day.
type Result struct {
	Key    string
	Events int
	// URL is a presigned download link, set only when requested.
	URL string
}

type Archiver struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	day         clock.DayClock
	log         logging.Logger
}

func NewArchiver(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config, day clock.DayClock, log logging.Logger) *Archiver {
	if log == nil {
		log = logging.Nop{}
	}
	return &Archiver{
		db:          db,
		repomanager: m,
		config:      cfg,
		day:         day,
		log:         log.With("module", "archive"),
	}
}

// ObjectKey names the archive object of the game day containing t.
func (a *Archiver) ObjectKey(t time.Time) string {
	d := a.day.DayStart(t).In(a.day.Location())
	return fmt.Sprintf("events/%04d/%02d/%02d.jsonl", d.Year(), d.Month(), d.Day())
}

func (a *Archiver) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(a.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			a.config.S3RootUser,
			a.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(a.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// ResolveDay maps a YYYY-MM-DD game date to an instant inside that game
// day. An empty date selects the game day before the one containing now.
func (a *Archiver) ResolveDay(date string, now time.Time) (time.Time, error) {
	if date == "" {
		return a.day.DayStart(now).Add(-time.Minute), nil
	}
	d, err := time.ParseInLocation(time.DateOnly, date, a.day.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	// The game day named D always covers 23:59 local on D.
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, a.day.Location()), nil
}

// ArchiveDay uploads every event of the game day containing t. The object
// is overwritten on rerun. A day without events uploads nothing.
func (a *Archiver) ArchiveDay(ctx context.Context, t time.Time) (*Result, error) {
	from := a.day.DayStart(t)
	to := a.day.NextDayStart(t)

	evs, err := a.repomanager.Events(a.db).ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	key := a.ObjectKey(t)
	if len(evs) == 0 {
		a.log.Info(ctx, "No events to archive", "from", from, "to", to)
		return &Result{Key: key}, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i := range evs {
		if err := enc.Encode(&evs[i]); err != nil {
			return nil, fmt.Errorf("error encoding event %s: %w", evs[i].ID, err)
		}
	}

	client, err := a.client(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	bucket := a.config.S3Bucket
	err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 put %s: %w", key, err)
	}

	a.log.Info(ctx, "Archived events", "key", key, "events", len(evs))
	return &Result{Key: key, Events: len(evs)}, nil
}

// DownloadURL presigns a GET for the archive of the game day containing t.
func (a *Archiver) DownloadURL(ctx context.Context, t time.Time, expires time.Duration) (string, error) {
	client, err := a.client(ctx)
	if err != nil {
		return "", err
	}

	bucket := a.config.S3Bucket
	key := a.ObjectKey(t)

	req, err := presignGetObject(client, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// ArchiveAndLink archives the game day containing t and, when linkTTL is
// positive and something was uploaded, attaches a presigned download URL.
func (a *Archiver) ArchiveAndLink(ctx context.Context, t time.Time, linkTTL time.Duration) (*Result, error) {
	res, err := a.ArchiveDay(ctx, t)
	if err != nil {
		return nil, err
	}
	if linkTTL <= 0 || res.Events == 0 {
		return res, nil
	}

	url, err := a.DownloadURL(ctx, t, linkTTL)
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", res.Key, err)
	}
	res.URL = url
	return res, nil
}
