package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"momo_gateway/internal/domain/entities"
	"momo_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSubscriptionsTableName = "subscriptions"

type subscriptionItem struct {
	ReferenceID string `dynamodbav:"reference_id"`
	Status      string `dynamodbav:"status"`
	ActivatedAt string `dynamodbav:"activated_at"`
}

// SubscriptionDynamoRepository persists subscription activations.
//
// Table requirements:
//   - PK: reference_id (string)

type SubscriptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb *dynamodb.Client) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

// Activate writes the activation record. Re-activating an existing reference
// returns the original record unchanged, which keeps the success callback
// safe against replays.
func (r *SubscriptionDynamoRepository) Activate(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "reference_id",
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			log.Printf("[subscription][repository] already active reference_id=%s", s.ReferenceID)
			return r.GetByReferenceID(ctx, s.ReferenceID)
		}
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) GetByReferenceID(ctx context.Context, referenceID string) (entities.Subscription, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference_id": &types.AttributeValueMemberS{Value: referenceID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Subscription{}, err
	}
	if len(out.Item) == 0 {
		return entities.Subscription{}, nil
	}

	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		ReferenceID: s.ReferenceID,
		Status:      string(s.Status),
		ActivatedAt: s.ActivatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	activatedAt, err := time.Parse(time.RFC3339Nano, it.ActivatedAt)
	if err != nil {
		activatedAt = time.Time{}
	}
	return entities.Subscription{
		ReferenceID: it.ReferenceID,
		Status:      entities.SubscriptionStatus(it.Status),
		ActivatedAt: activatedAt,
	}
}
