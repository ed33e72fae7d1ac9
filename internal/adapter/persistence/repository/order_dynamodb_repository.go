package repository

import (
	"context"
	"fmt"
	"strings"

	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/usecase/interfaces"
	"storefront_settlement/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID            string `dynamodbav:"id"`
	CustomerEmail string `dynamodbav:"customer_email"`
	Amount        int64  `dynamodbav:"amount"`
	Status        string `dynamodbav:"status"`
	PaymentStatus string `dynamodbav:"payment_status"`
	PaymentID     string `dynamodbav:"payment_id,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists the orders-service view of an order.
//
// Table requirements:
//   - PK: id (string)
//
// The order id is shared with the payment ledger, so redelivered
// payment events always land on the same item.

type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: pkg.GetEnv("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderRecord{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderRecord{}, err
	}
	return fromOrderItem(it), nil
}

// MarkPaid upserts the order as paid. The fulfillment status is only
// initialised when the item is new, so a late payment event never rewinds a
// delivery that already progressed.
func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, o entities.OrderRecord) (entities.OrderRecord, bool, error) {
	rec, err := r.update(ctx, o.ID,
		"attribute_not_exists(#id) OR #payment_status <> :completed",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #amount = :amount, #payment_status = :completed, " +
				"#payment_id = :payment_id, #status = if_not_exists(#status, :pending), " +
				"#created_at = if_not_exists(#created_at, :now), #updated_at = :now"
			vals := map[string]types.AttributeValue{
				":amount":     &types.AttributeValueMemberN{Value: formatInt(o.Amount)},
				":completed":  &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
				":payment_id": &types.AttributeValueMemberS{Value: o.PaymentID},
				":pending":    &types.AttributeValueMemberS{Value: string(entities.FulfillmentStatusPending)},
				":now":        &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#amount":         "amount",
				"#payment_status": "payment_status",
				"#payment_id":     "payment_id",
				"#status":         "status",
				"#created_at":     "created_at",
				"#updated_at":     "updated_at",
			}
			// Legacy payment events carry no email; keep whatever is stored.
			if o.CustomerEmail != "" {
				expr += ", #customer_email = :customer_email"
				vals[":customer_email"] = &types.AttributeValueMemberS{Value: o.CustomerEmail}
				names["#customer_email"] = "customer_email"
			}
			return expr, vals, names
		})
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.OrderRecord{}, false, err
		}
		existing, getErr := r.GetByID(ctx, o.ID)
		if getErr != nil {
			return entities.OrderRecord{}, false, getErr
		}
		return existing, false, nil
	}
	return rec, true, nil
}

// AdvanceStatus moves the order to next only while the stored status is an
// earlier lifecycle stage. A stale or repeated status leaves the item as is
// and returns it with applied=false; a missing order returns a zero record.
func (r *OrderDynamoRepository) AdvanceStatus(ctx context.Context, id string, next entities.FulfillmentStatus) (entities.OrderRecord, bool, error) {
	from := entities.StatusesPreceding(next)
	if len(from) == 0 {
		existing, err := r.GetByID(ctx, id)
		return existing, false, err
	}

	rec, err := r.update(ctx, id, advanceCondition(len(from)),
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #status = :status, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(next)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			for i, st := range from {
				vals[fmt.Sprintf(":from%d", i)] = &types.AttributeValueMemberS{Value: string(st)}
			}
			names := map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		})
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.OrderRecord{}, false, err
		}
		existing, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return entities.OrderRecord{}, false, getErr
		}
		return existing, false, nil
	}
	return rec, true, nil
}

func advanceCondition(n int) string {
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf(":from%d", i)
	}
	return "attribute_exists(#id) AND #status IN (" + strings.Join(placeholders, ", ") + ")"
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.OrderRecord, error) {
	updateExpr, values, names := build(nowString())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.OrderRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.OrderRecord{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OrderRecord{}, err
	}
	return fromOrderItem(it), nil
}

func fromOrderItem(it orderItem) entities.OrderRecord {
	return entities.OrderRecord{
		ID:            it.ID,
		CustomerEmail: it.CustomerEmail,
		Amount:        it.Amount,
		Status:        entities.FulfillmentStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		PaymentID:     it.PaymentID,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
