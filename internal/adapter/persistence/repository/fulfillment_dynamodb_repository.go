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

const defaultFulfillmentsTableName = "fulfillments"

type fulfillmentItem struct {
	OrderID         string      `dynamodbav:"order_id"`
	CustomerEmail   string      `dynamodbav:"customer_email"`
	DeliveryAddress addressItem `dynamodbav:"delivery_address"`
	Amount          int64       `dynamodbav:"amount"`
	Status          string      `dynamodbav:"status"`
	PartnerEmail    string      `dynamodbav:"partner_email,omitempty"`
	CreatedAt       string      `dynamodbav:"created_at"`
	UpdatedAt       string      `dynamodbav:"updated_at"`
}

// FulfillmentDynamoRepository persists delivery jobs.
//
// Table requirements:
//   - PK: order_id (string)
type FulfillmentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IFulfillmentRepository = (*FulfillmentDynamoRepository)(nil)

func NewFulfillmentDynamoRepository(ddb DynamoDBAPI) *FulfillmentDynamoRepository {
	return &FulfillmentDynamoRepository{
		ddb:       ddb,
		tableName: pkg.GetEnv("FULFILLMENTS_TABLE", defaultFulfillmentsTableName),
	}
}

func (r *FulfillmentDynamoRepository) Create(ctx context.Context, rec entities.FulfillmentRecord) (entities.FulfillmentRecord, bool, error) {
	av, err := attributevalue.MarshalMap(toFulfillmentItem(rec))
	if err != nil {
		return entities.FulfillmentRecord{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		if !isConditionalCheckFailed(err) {
			return entities.FulfillmentRecord{}, false, err
		}
		existing, getErr := r.GetByOrderID(ctx, rec.OrderID)
		if getErr != nil {
			return entities.FulfillmentRecord{}, false, getErr
		}
		return existing, false, nil
	}
	return rec, true, nil
}

func (r *FulfillmentDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.FulfillmentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FulfillmentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.FulfillmentRecord{}, nil
	}

	var it fulfillmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FulfillmentRecord{}, err
	}
	return fromFulfillmentItem(it), nil
}

// Transition moves the job from one status to the next. An empty
// partnerEmail leaves the assigned partner untouched.
func (r *FulfillmentDynamoRepository) Transition(ctx context.Context, orderID string, from, to entities.FulfillmentStatus, partnerEmail string) (entities.FulfillmentRecord, error) {
	updateExpr := "SET #status = :to, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}
	names := map[string]string{
		"#order_id":   "order_id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if partnerEmail != "" {
		updateExpr += ", #partner_email = :partner_email"
		values[":partner_email"] = &types.AttributeValueMemberS{Value: partnerEmail}
		names["#partner_email"] = "partner_email"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression:       aws.String("attribute_exists(#order_id) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.FulfillmentRecord{}, nil
		}
		return entities.FulfillmentRecord{}, err
	}

	var it fulfillmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FulfillmentRecord{}, err
	}
	return fromFulfillmentItem(it), nil
}

func toFulfillmentItem(rec entities.FulfillmentRecord) fulfillmentItem {
	return fulfillmentItem{
		OrderID:         rec.OrderID,
		CustomerEmail:   rec.CustomerEmail,
		DeliveryAddress: toAddressItem(rec.DeliveryAddress),
		Amount:          rec.Amount,
		Status:          string(rec.Status),
		PartnerEmail:    rec.PartnerEmail,
		CreatedAt:       formatTime(rec.CreatedAt),
		UpdatedAt:       formatTime(rec.UpdatedAt),
	}
}

func fromFulfillmentItem(it fulfillmentItem) entities.FulfillmentRecord {
	return entities.FulfillmentRecord{
		OrderID:         it.OrderID,
		CustomerEmail:   it.CustomerEmail,
		DeliveryAddress: fromAddressItem(it.DeliveryAddress),
		Amount:          it.Amount,
		Status:          entities.FulfillmentStatus(it.Status),
		PartnerEmail:    it.PartnerEmail,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
