package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mecanica_os/internal/infrastructure/database"
	"mecanica_os/internal/usecase/interfaces"
	"mecanica_os/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

var ErrMissingQueueURL = errors.New("missing REPORT_QUEUE_URL")

// MessageType tags the queue messages so the mail worker can route them.
const MessageType = "report_email"

// SQSReportSender hands report e-mails to the mail worker through an SQS
// queue. The message body is the JSON encoded interfaces.ReportEmail.
type SQSReportSender struct {
	sqs      database.SQSAPI
	queueURL string
	log      *logger.Logger
}

var _ interfaces.IReportSender = (*SQSReportSender)(nil)

func NewSQSReportSender(client database.SQSAPI, queueURL string, log *logger.Logger) *SQSReportSender {
	return &SQSReportSender{sqs: client, queueURL: queueURL, log: log.Component("report_sender")}
}

func (s *SQSReportSender) Send(ctx context.Context, email interfaces.ReportEmail) error {
	if s.queueURL == "" {
		return ErrMissingQueueURL
	}
	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("encode report email: %w", err)
	}

	out, err := s.sqs.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"type": {DataType: aws.String("String"), StringValue: aws.String(MessageType)},
		},
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	s.log.Info().Str("to", email.To).Str("message_id", aws.ToString(out.MessageId)).Msg("report email queued")
	return nil
}
