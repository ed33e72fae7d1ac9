package repository

import (
	"context"

	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/usecase/interfaces"
	"storefront_settlement/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName     = "payments"
	paymentsProviderOrderIDIndex = "provider_order_id-index"
	paymentsEventsPendingIndex   = "events_pending-index"
	eventsPendingMarker          = "1"
)

type addressItem struct {
	Street  string `dynamodbav:"street"`
	City    string `dynamodbav:"city"`
	State   string `dynamodbav:"state"`
	Zip     string `dynamodbav:"zip"`
	Country string `dynamodbav:"country"`
}

type paymentItem struct {
	OrderID           string      `dynamodbav:"order_id"`
	ProviderOrderID   string      `dynamodbav:"provider_order_id,omitempty"`
	Amount            int64       `dynamodbav:"amount"`
	Currency          string      `dynamodbav:"currency"`
	Status            string      `dynamodbav:"status"`
	ProviderPaymentID string      `dynamodbav:"provider_payment_id,omitempty"`
	ProviderSignature string      `dynamodbav:"provider_signature,omitempty"`
	CustomerEmail     string      `dynamodbav:"customer_email"`
	DeliveryAddress   addressItem `dynamodbav:"delivery_address"`
	EventsPending     string      `dynamodbav:"events_pending,omitempty"`
	CreatedAt         string      `dynamodbav:"created_at"`
	UpdatedAt         string      `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository is the DynamoDB payment ledger.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: provider_order_id-index (PK: provider_order_id)
//   - GSI: events_pending-index (PK: events_pending), sparse
//
// Every status change is a conditional UpdateItem on status = pending, which
// makes finalize a compare-and-swap under concurrent callbacks.

type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentLedger = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: pkg.GetEnv("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

// Create stores a pending payment. A pending payment for the same order is
// replaced (checkout resubmission); a settled one is never overwritten.
func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id) OR #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
			"#status":   "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, interfaces.ErrLedgerConflict
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) AttachProviderOrder(ctx context.Context, orderID, providerOrderID string) (entities.Payment, error) {
	p, err := r.update(ctx, orderID, "attribute_exists(#order_id) AND #status = :pending",
		"SET #provider_order_id = :provider_order_id, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":pending":           &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":provider_order_id": &types.AttributeValueMemberS{Value: providerOrderID},
			":updated_at":        &types.AttributeValueMemberS{Value: nowString()},
		},
		map[string]string{
			"#status":            "status",
			"#provider_order_id": "provider_order_id",
			"#updated_at":        "updated_at",
		})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, interfaces.ErrLedgerConflict
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) FindByOrderID(ctx context.Context, orderID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// FindByProviderOrderID reads the GSI, which is eventually consistent;
// callers re-read by order id before acting on the result.
func (r *PaymentDynamoRepository) FindByProviderOrderID(ctx context.Context, providerOrderID string) (entities.Payment, error) {
	items, err := r.query(ctx, paymentsProviderOrderIDIndex, "provider_order_id", providerOrderID, 1)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(items) == 0 {
		return entities.Payment{}, nil
	}
	return items[0], nil
}

func (r *PaymentDynamoRepository) Finalize(ctx context.Context, orderID string, outcome entities.PaymentStatus, providerPaymentID, signature string) (entities.Payment, bool, error) {
	updateExpr := "SET #status = :outcome, #provider_payment_id = :provider_payment_id, #provider_signature = :provider_signature, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":pending":             &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
		":outcome":             &types.AttributeValueMemberS{Value: string(outcome)},
		":provider_payment_id": &types.AttributeValueMemberS{Value: providerPaymentID},
		":provider_signature":  &types.AttributeValueMemberS{Value: signature},
		":updated_at":          &types.AttributeValueMemberS{Value: nowString()},
	}
	names := map[string]string{
		"#status":              "status",
		"#provider_payment_id": "provider_payment_id",
		"#provider_signature":  "provider_signature",
		"#updated_at":          "updated_at",
	}
	if outcome == entities.PaymentStatusCompleted {
		// Written with the flip so a crash before publishing leaves a marker for the sweeper.
		updateExpr += ", #events_pending = :events_pending"
		values[":events_pending"] = &types.AttributeValueMemberS{Value: eventsPendingMarker}
		names["#events_pending"] = "events_pending"
	}

	p, err := r.update(ctx, orderID, "attribute_exists(#order_id) AND #status = :pending", updateExpr, values, names)
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.Payment{}, false, err
		}
		existing, getErr := r.FindByOrderID(ctx, orderID)
		if getErr != nil {
			return entities.Payment{}, false, getErr
		}
		return existing, false, nil
	}
	return p, true, nil
}

func (r *PaymentDynamoRepository) MarkEventsPublished(ctx context.Context, orderID string) error {
	_, err := r.update(ctx, orderID, "attribute_exists(#order_id)",
		"REMOVE #events_pending SET #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		map[string]string{
			"#events_pending": "events_pending",
			"#updated_at":     "updated_at",
		})
	return err
}

func (r *PaymentDynamoRepository) ListEventsPending(ctx context.Context, limit int) ([]entities.Payment, error) {
	return r.query(ctx, paymentsEventsPendingIndex, "events_pending", eventsPendingMarker, limit)
}

func (r *PaymentDynamoRepository) query(ctx context.Context, index, key, value string, limit int) ([]entities.Payment, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func (r *PaymentDynamoRepository) update(
	ctx context.Context,
	orderID string,
	condition string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#order_id": "order_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{Street: a.Street, City: a.City, State: a.State, Zip: a.Zip, Country: a.Country}
}

func fromAddressItem(a addressItem) entities.Address {
	return entities.Address{Street: a.Street, City: a.City, State: a.State, Zip: a.Zip, Country: a.Country}
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		OrderID:           p.OrderID,
		ProviderOrderID:   p.ProviderOrderID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderSignature: p.ProviderSignature,
		CustomerEmail:     p.CustomerEmail,
		DeliveryAddress:   toAddressItem(p.DeliveryAddress),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
	if p.EventsPending {
		it.EventsPending = eventsPendingMarker
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.OrderID,
		OrderID:           it.OrderID,
		ProviderOrderID:   it.ProviderOrderID,
		Amount:            it.Amount,
		Currency:          it.Currency,
		Status:            entities.PaymentStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderSignature: it.ProviderSignature,
		CustomerEmail:     it.CustomerEmail,
		DeliveryAddress:   fromAddressItem(it.DeliveryAddress),
		EventsPending:     it.EventsPending == eventsPendingMarker,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
