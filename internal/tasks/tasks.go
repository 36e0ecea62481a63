package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // registered for image.Decode
	"io"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hibiken/asynq"
	"github.com/nfnt/resize"
	"github.com/redis/go-redis/v9"

	"github.com/Vivek9939947227/Asprints-Aada/internal/config"
	"github.com/Vivek9939947227/Asprints-Aada/internal/email"
	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
	"github.com/Vivek9939947227/Asprints-Aada/internal/services"
)

// Task types processed by the background worker.
const (
	TypeInquiryNotify = "inquiry:notify"
	TypePhotoProcess  = "photo:process"
)

// IClient is the slice of the asynq client the API handlers need. Kept as
// an interface so handler tests can capture enqueued tasks.
type IClient interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NewClient returns an asynq client bound to the same Redis instance as the
// blob store.
func NewClient(rdb *redis.Client) *asynq.Client {
	clientOpt := asynq.RedisClientOpt{
		Addr:     rdb.Options().Addr,
		Password: rdb.Options().Password,
		DB:       rdb.Options().DB,
	}
	return asynq.NewClient(clientOpt)
}

// InquiryNotifyPayload carries everything the digest email needs, so the
// worker never has to reach back into live state for a message that may
// already be gone.
type InquiryNotifyPayload struct {
	InquiryID    string `json:"inquiry_id"`
	PropertyID   string `json:"property_id"`
	PropertyName string `json:"property_name"`
	SenderName   string `json:"sender_name"`
	Message      string `json:"message"`
	Seriousness  int    `json:"seriousness"`
	Tone         string `json:"tone"`
	IsSpam       bool   `json:"is_spam"`
	Reasoning    string `json:"reasoning"`
}

// EnqueueInquiryNotify schedules the notification digest for a freshly
// submitted inquiry.
func EnqueueInquiryNotify(client IClient, inq models.Inquiry) error {
	payload, err := json.Marshal(InquiryNotifyPayload{
		InquiryID:    inq.ID,
		PropertyID:   inq.PropertyID,
		PropertyName: inq.PropertyName,
		SenderName:   inq.SenderName,
		Message:      inq.Message,
		Seriousness:  inq.AIAnalysis.Seriousness,
		Tone:         inq.AIAnalysis.Tone,
		IsSpam:       inq.AIAnalysis.IsSpam,
		Reasoning:    inq.AIAnalysis.Reasoning,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal inquiry notify payload: %w", err)
	}
	_, err = client.Enqueue(asynq.NewTask(TypeInquiryNotify, payload), asynq.Queue("default"))
	return err
}

// PhotoProcessPayload identifies an uploaded photo awaiting normalization.
type PhotoProcessPayload struct {
	S3Key      string `json:"s3_key"`
	PropertyID string `json:"property_id"`
}

// EnqueuePhotoProcess schedules normalization of an uploaded listing photo.
func EnqueuePhotoProcess(client IClient, s3Key, propertyID string) error {
	payload, err := json.Marshal(PhotoProcessPayload{S3Key: s3Key, PropertyID: propertyID})
	if err != nil {
		return fmt.Errorf("failed to marshal photo process payload: %w", err)
	}
	_, err = client.Enqueue(asynq.NewTask(TypePhotoProcess, payload), asynq.Queue("images"))
	return err
}

// TaskProcessor handles the processing of tasks. It holds the dependencies
// needed by the task handlers.
type TaskProcessor struct {
	cfg            *config.Config
	listingService services.IListingService
	emailSender    email.Sender
	s3Client       *s3.Client
}

// NewTaskProcessor creates a TaskProcessor with its dependencies.
func NewTaskProcessor(cfg *config.Config, listingService services.IListingService, emailSender email.Sender, s3Client *s3.Client) *TaskProcessor {
	return &TaskProcessor{
		cfg:            cfg,
		listingService: listingService,
		emailSender:    emailSender,
		s3Client:       s3Client,
	}
}

// SetupServer configures an Asynq server and mux with all task handlers
// registered. The caller owns running and shutting it down.
func SetupServer(rdb *redis.Client, processor *TaskProcessor) (*asynq.Server, *asynq.ServeMux) {
	serverOpt := asynq.RedisClientOpt{
		Addr:     rdb.Options().Addr,
		Password: rdb.Options().Password,
		DB:       rdb.Options().DB,
	}

	srv := asynq.NewServer(
		serverOpt,
		asynq.Config{
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
				"images":   5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq Error] Task Type: %s, Payload: %s, Error: %v", task.Type(), string(task.Payload()), err)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeInquiryNotify, processor.HandleInquiryNotifyTask)
	mux.HandleFunc(TypePhotoProcess, processor.HandlePhotoProcessTask)

	return srv, mux
}

// HandleInquiryNotifyTask emails the inquiry digest to the platform
// address.
func (p *TaskProcessor) HandleInquiryNotifyTask(ctx context.Context, t *asynq.Task) error {
	var payload InquiryNotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal inquiry notify payload: %v: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("New inquiry for %s", payload.PropertyName)
	spamNote := ""
	if payload.IsSpam {
		spamNote = " [flagged as spam]"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("To: %s\r\n", p.cfg.PlatformEmail))
	sb.WriteString(fmt.Sprintf("From: %s\r\n", p.cfg.SmtpFromAddress))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(fmt.Sprintf("Property: %s (%s)\r\n", payload.PropertyName, payload.PropertyID))
	sb.WriteString(fmt.Sprintf("From: %s\r\n", payload.SenderName))
	sb.WriteString(fmt.Sprintf("Message: %s\r\n", payload.Message))
	sb.WriteString("\r\n")
	sb.WriteString(fmt.Sprintf("AI analysis: seriousness %d/100, tone %s%s\r\n", payload.Seriousness, payload.Tone, spamNote))
	sb.WriteString(fmt.Sprintf("Reasoning: %s\r\n", payload.Reasoning))

	if err := p.emailSender.Send(ctx, []string{p.cfg.PlatformEmail}, subject, []byte(sb.String())); err != nil {
		log.Printf("Inquiry digest delivery failed (will retry): %v", err)
		return err
	}
	return nil
}

// HandlePhotoProcessTask normalizes an uploaded listing photo: download from
// S3, bound dimensions, re-encode as JPEG, upload back and attach the
// reference to the listing.
func (p *TaskProcessor) HandlePhotoProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload PhotoProcessPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal photo process payload: %v: %w", err, asynq.SkipRetry)
	}

	log.Printf("Processing photo task: S3Key=%s, PropertyID=%s", payload.S3Key, payload.PropertyID)

	getObjectOutput, err := p.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.cfg.AwsS3Bucket),
		Key:    aws.String(payload.S3Key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			log.Printf("S3 object %s not found, likely upload failed or key incorrect.", payload.S3Key)
			return fmt.Errorf("s3 object not found: %w", asynq.SkipRetry)
		}
		return fmt.Errorf("failed to download photo from S3: %w", err)
	}
	defer getObjectOutput.Body.Close()

	imgData, err := io.ReadAll(getObjectOutput.Body)
	if err != nil {
		return fmt.Errorf("failed to read photo data: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(imgData))
	if err != nil {
		log.Printf("Error decoding photo for key %s: %v", payload.S3Key, err)
		return fmt.Errorf("unsupported image format or corrupt image: %w", asynq.SkipRetry)
	}
	log.Printf("Decoded photo %s, format: %s, size: %dx%d", payload.S3Key, format, img.Bounds().Dx(), img.Bounds().Dy())

	maxDim := uint(p.cfg.ImageMaxDimension)
	needsResize := uint(img.Bounds().Dx()) > maxDim || uint(img.Bounds().Dy()) > maxDim

	processedData := imgData
	contentType := "image/jpeg"
	if getObjectOutput.ContentType != nil {
		contentType = *getObjectOutput.ContentType
	}

	if needsResize {
		resizedImg := resize.Thumbnail(maxDim, maxDim, img, resize.Lanczos3)
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, resizedImg, &jpeg.Options{Quality: 85}); err != nil {
			return fmt.Errorf("failed to re-encode resized photo: %w", err)
		}
		processedData = buf.Bytes()
		contentType = "image/jpeg"
		log.Printf("Resized photo %s to %dx%d", payload.S3Key, resizedImg.Bounds().Dx(), resizedImg.Bounds().Dy())
	}

	_, err = p.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.cfg.AwsS3Bucket),
		Key:         aws.String(payload.S3Key),
		Body:        bytes.NewReader(processedData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload processed photo: %w", err)
	}

	imageRef := payload.S3Key
	if p.cfg.ImageBaseS3URL != "" {
		imageRef = strings.TrimRight(p.cfg.ImageBaseS3URL, "/") + "/" + payload.S3Key
	}
	if !p.listingService.AddImageToProperty(payload.PropertyID, imageRef) {
		log.Printf("Listing %s gone before photo %s was attached, dropping.", payload.PropertyID, payload.S3Key)
		return nil
	}

	log.Printf("Photo task processed successfully: Key=%s, PropertyID=%s", payload.S3Key, payload.PropertyID)
	return nil
}
