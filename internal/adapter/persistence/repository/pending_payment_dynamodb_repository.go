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

const defaultPendingPaymentsTableName = "pending_payments"

type pendingPaymentItem struct {
	ReferenceID string `dynamodbav:"reference_id"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// PendingPaymentDynamoRepository is the durable record of in-flight payments.
//
// Table requirements:
//   - PK: reference_id (string)
//
// Every Add/Remove writes through to DynamoDB, so tracked references survive a
// process restart. Reads fail open: unreadable storage degrades to an empty
// set rather than halting reconciliation, since a temporarily forgotten
// pending payment can still be rechecked manually.

type PendingPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPendingPaymentRepository = (*PendingPaymentDynamoRepository)(nil)

func NewPendingPaymentDynamoRepository(ddb *dynamodb.Client) *PendingPaymentDynamoRepository {
	return &PendingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PENDING_PAYMENTS_TABLE", defaultPendingPaymentsTableName),
	}
}

// Add persists a PENDING record for the reference. Adding a reference that is
// already tracked is a no-op: reconciliation confirms the same reference
// idempotently, so a duplicate row would only waste a poll. Write failures
// surface to the caller so it can warn that tracking may be lost.
func (r *PendingPaymentDynamoRepository) Add(ctx context.Context, p entities.PendingPayment) error {
	av, err := attributevalue.MarshalMap(toPendingPaymentItem(p))
	if err != nil {
		return err
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
			log.Printf("[payment][repository] pending record already tracked reference_id=%s", p.ReferenceID)
			return nil
		}
		return err
	}
	return nil
}

// Remove deletes the record for the reference; absent records are a no-op.
func (r *PendingPaymentDynamoRepository) Remove(ctx context.Context, referenceID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference_id": &types.AttributeValueMemberS{Value: referenceID},
		},
	})
	return err
}

// ListAll returns a fresh snapshot of every tracked reference. No ordering
// guarantee. Storage errors degrade to an empty snapshot.
func (r *PendingPaymentDynamoRepository) ListAll(ctx context.Context) ([]entities.PendingPayment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		log.Printf("[payment][repository] pending scan failed, treating store as empty err=%v", err)
		return []entities.PendingPayment{}, nil
	}

	records := make([]entities.PendingPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pendingPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			log.Printf("[payment][repository] skipping unreadable pending record err=%v", err)
			continue
		}
		records = append(records, fromPendingPaymentItem(it))
	}
	return records, nil
}

// HasAny reports whether any payment is currently tracked; used to gate the
// periodic reconciliation timer.
func (r *PendingPaymentDynamoRepository) HasAny(ctx context.Context) (bool, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(1),
		Select:    types.SelectCount,
	})
	if err != nil {
		log.Printf("[payment][repository] pending count failed, treating store as empty err=%v", err)
		return false, nil
	}
	return out.Count > 0, nil
}

func toPendingPaymentItem(p entities.PendingPayment) pendingPaymentItem {
	return pendingPaymentItem{
		ReferenceID: p.ReferenceID,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPendingPaymentItem(it pendingPaymentItem) entities.PendingPayment {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}
	return entities.PendingPayment{
		ReferenceID: it.ReferenceID,
		Status:      entities.PaymentStatus(it.Status),
		CreatedAt:   createdAt,
	}
}
