package repository

import (
	"context"
	"errors"
	"testing"

	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamoDB struct {
	putErr     error
	updateErr  error
	updateOut  map[string]types.AttributeValue
	getItem    map[string]types.AttributeValue
	queryItems []map[string]types.AttributeValue

	puts    []*dynamodb.PutItemInput
	updates []*dynamodb.UpdateItemInput
	gets    []*dynamodb.GetItemInput
	queries []*dynamodb.QueryInput
}

func (f *fakeDynamoDB) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets = append(f.gets, in)
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamoDB) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.updateOut}, nil
}

func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return &dynamodb.QueryOutput{Items: f.queryItems}, nil
}

func mustMarshalPayment(t *testing.T, p entities.Payment) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestPaymentDynamoRepository_Create(t *testing.T) {
	t.Run("conditional put", func(t *testing.T) {
		ddb := &fakeDynamoDB{}
		repo := NewPaymentDynamoRepository(ddb)

		if _, err := repo.Create(context.Background(), newPendingPayment("O1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ddb.puts) != 1 {
			t.Fatalf("expected one put, got %d", len(ddb.puts))
		}
		if got := *ddb.puts[0].ConditionExpression; got != "attribute_not_exists(#order_id) OR #status = :pending" {
			t.Fatalf("unexpected condition: %s", got)
		}
	})

	t.Run("settled payment conflicts", func(t *testing.T) {
		ddb := &fakeDynamoDB{putErr: &types.ConditionalCheckFailedException{}}
		repo := NewPaymentDynamoRepository(ddb)

		_, err := repo.Create(context.Background(), newPendingPayment("O1"))
		if !errors.Is(err, interfaces.ErrLedgerConflict) {
			t.Fatalf("expected ErrLedgerConflict, got %v", err)
		}
	})
}

func TestPaymentDynamoRepository_Finalize(t *testing.T) {
	t.Run("fresh transition marks events pending", func(t *testing.T) {
		settled := newPendingPayment("O1")
		settled.Status = entities.PaymentStatusCompleted
		settled.EventsPending = true
		ddb := &fakeDynamoDB{updateOut: mustMarshalPayment(t, settled)}
		repo := NewPaymentDynamoRepository(ddb)

		p, ok, err := repo.Finalize(context.Background(), "O1", entities.PaymentStatusCompleted, "PAY1", "sig")
		if err != nil || !ok {
			t.Fatalf("expected transition, ok=%v err=%v", ok, err)
		}
		if p.Status != entities.PaymentStatusCompleted || !p.EventsPending || p.ID != "O1" {
			t.Fatalf("unexpected payment: %+v", p)
		}
		in := ddb.updates[0]
		if *in.ConditionExpression != "attribute_exists(#order_id) AND #status = :pending" {
			t.Fatalf("unexpected condition: %s", *in.ConditionExpression)
		}
		if _, ok := in.ExpressionAttributeValues[":events_pending"]; !ok {
			t.Fatalf("expected events_pending to be set with the status flip")
		}
	})

	t.Run("failed outcome does not mark events pending", func(t *testing.T) {
		failed := newPendingPayment("O1")
		failed.Status = entities.PaymentStatusFailed
		ddb := &fakeDynamoDB{updateOut: mustMarshalPayment(t, failed)}
		repo := NewPaymentDynamoRepository(ddb)

		if _, _, err := repo.Finalize(context.Background(), "O1", entities.PaymentStatusFailed, "PAY1", "sig"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := ddb.updates[0].ExpressionAttributeValues[":events_pending"]; ok {
			t.Fatalf("failed payments must not be queued for event publishing")
		}
	})

	t.Run("already terminal returns stored record", func(t *testing.T) {
		stored := newPendingPayment("O1")
		stored.Status = entities.PaymentStatusCompleted
		stored.ProviderPaymentID = "PAY1"
		ddb := &fakeDynamoDB{
			updateErr: &types.ConditionalCheckFailedException{},
			getItem:   mustMarshalPayment(t, stored),
		}
		repo := NewPaymentDynamoRepository(ddb)

		p, ok, err := repo.Finalize(context.Background(), "O1", entities.PaymentStatusCompleted, "PAY2", "sig")
		if err != nil || ok {
			t.Fatalf("expected no transition, ok=%v err=%v", ok, err)
		}
		if p.ProviderPaymentID != "PAY1" {
			t.Fatalf("expected stored record, got %+v", p)
		}
		if len(ddb.gets) != 1 || !*ddb.gets[0].ConsistentRead {
			t.Fatalf("expected one consistent read after failed condition")
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ddb := &fakeDynamoDB{updateErr: &types.ConditionalCheckFailedException{}}
		repo := NewPaymentDynamoRepository(ddb)

		p, ok, err := repo.Finalize(context.Background(), "missing", entities.PaymentStatusCompleted, "PAY1", "sig")
		if err != nil || ok || p.OrderID != "" {
			t.Fatalf("expected zero result, got %+v ok=%v err=%v", p, ok, err)
		}
	})

	t.Run("other errors propagate", func(t *testing.T) {
		ddb := &fakeDynamoDB{updateErr: errors.New("throttled")}
		repo := NewPaymentDynamoRepository(ddb)

		_, _, err := repo.Finalize(context.Background(), "O1", entities.PaymentStatusCompleted, "PAY1", "sig")
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})
}

func TestPaymentDynamoRepository_FindByProviderOrderID(t *testing.T) {
	stored := newPendingPayment("O1")
	stored.ProviderOrderID = "PO1"
	ddb := &fakeDynamoDB{queryItems: []map[string]types.AttributeValue{mustMarshalPayment(t, stored)}}
	repo := NewPaymentDynamoRepository(ddb)

	p, err := repo.FindByProviderOrderID(context.Background(), "PO1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.OrderID != "O1" || p.ProviderOrderID != "PO1" {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if *ddb.queries[0].IndexName != paymentsProviderOrderIDIndex {
		t.Fatalf("unexpected index: %s", *ddb.queries[0].IndexName)
	}
}
