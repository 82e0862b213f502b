package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"talentmatch-be/internal/dto"
	"talentmatch-be/internal/entity"
	"talentmatch-be/internal/pkg/logger"
	"talentmatch-be/internal/repository/unitofwork"
	"talentmatch-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the embed-job topic: for each message it fetches
// the posting, builds the embedding document and upserts the vector row.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EmbedJobMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	job, err := uow.JobRepository().FindOneWithCompany(ctx, payload.JobId)
	if err != nil {
		cs.log.Error("consumer", "failed to fetch job posting", map[string]interface{}{
			"job_id": payload.JobId.String(),
			"error":  err.Error(),
		})
		msg.Nack() // retriable
		return
	}
	if job == nil {
		// Posting deleted between publish and consume. Nothing to embed.
		msg.Ack()
		return
	}

	companyLine := ""
	if job.Company != nil {
		companyLine = fmt.Sprintf("Company: %s (%s stage)\n", job.Company.Name, job.Company.Stage)
	}

	document := fmt.Sprintf(`Job Title: %s
Role Category: %s
%sLocation: %s (%s, %s)

%s`,
		job.Title,
		job.RoleCategory,
		companyLine,
		job.Location,
		job.RemotePolicy,
		job.EmploymentType,
		job.Description,
	)

	res, err := cs.embeddingProvider.Generate(document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		cs.log.Error("consumer", "failed to generate embedding", map[string]interface{}{
			"job_id": payload.JobId.String(),
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}

	embeddingRow := &entity.JobEmbedding{
		Id:        uuid.New(),
		JobId:     job.Id,
		Document:  document,
		Values:    res.Embedding.Values,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.JobEmbeddingRepository().Upsert(ctx, embeddingRow); err != nil {
		cs.log.Error("consumer", "failed to upsert job embedding", map[string]interface{}{
			"job_id": payload.JobId.String(),
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "job posting embedded", map[string]interface{}{
		"job_id": payload.JobId.String(),
	})
	msg.Ack()
}
