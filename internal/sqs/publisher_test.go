package sqs

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSQSClient is a mock implementation of the SQS client for testing.
type mockSQSClient struct {
	sendMessageFunc func(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

func (m *mockSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if m.sendMessageFunc != nil {
		return m.sendMessageFunc(ctx, params, optFns...)
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestPublisher_PublishPreorderMessage(t *testing.T) {
	t.Run("successful message publish", func(t *testing.T) {
		// given
		queueURL := "https://sqs.us-east-1.amazonaws.com/123456789/preorders"
		ctx := context.Background()

		mockClient := &mockSQSClient{
			sendMessageFunc: func(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
				assert.Equal(t, queueURL, *params.QueueUrl)
				require.NotNil(t, params.MessageBody)
				assert.Contains(t, *params.MessageBody, `"action":"created"`)
				assert.Contains(t, *params.MessageBody, `"email":"a@x.com"`)
				return &sqs.SendMessageOutput{
					MessageId: aws.String("test-message-id"),
				}, nil
			},
		}

		publisher := &Publisher{
			client:   mockClient,
			queueURL: queueURL,
		}

		msg := PreorderMessage{
			Action:     "created",
			PreorderID: 1757372400000,
			Name:       "A",
			Email:      "a@x.com",
		}

		// when
		err := publisher.PublishPreorderMessage(ctx, msg)

		// then
		require.NoError(t, err)
	})

	t.Run("send failure is returned", func(t *testing.T) {
		ctx := context.Background()

		mockClient := &mockSQSClient{
			sendMessageFunc: func(_ context.Context, _ *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
				return nil, errors.New("queue unavailable")
			},
		}

		publisher := &Publisher{
			client:   mockClient,
			queueURL: "https://sqs.us-east-1.amazonaws.com/123456789/preorders",
		}

		err := publisher.PublishPreorderMessage(ctx, PreorderMessage{Action: "created"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}
