package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"preconstruct/internal/domain/entities"
	"preconstruct/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBidsTableName = "vendor_bids"
	bidsEstimateIDIndex  = "estimate_id-index"
)

type vendorBidItem struct {
	ID          string   `dynamodbav:"id"`
	EstimateID  string   `dynamodbav:"estimate_id"`
	VendorName  string   `dynamodbav:"vendor_name"`
	Trade       string   `dynamodbav:"trade"`
	TotalAmount string   `dynamodbav:"total_amount"`
	LineItems   string   `dynamodbav:"line_items,omitempty"`
	Confidence  int      `dynamodbav:"confidence"`
	Status      string   `dynamodbav:"status"`
	Inclusions  []string `dynamodbav:"inclusions,omitempty"`
	Exclusions  []string `dynamodbav:"exclusions,omitempty"`
	SubmittedAt string   `dynamodbav:"submitted_at"`
}

// VendorBidDynamoRepository persists VendorBid entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)
//
// ReplaceForTrade implements the replace-collection mutation: the trade's
// prior bid set is deleted, then the new set is written. With a single
// logical writer per estimate this is safe without a transaction.

type VendorBidDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVendorBidRepository = (*VendorBidDynamoRepository)(nil)

func NewVendorBidDynamoRepository(ddb *dynamodb.Client) *VendorBidDynamoRepository {
	return &VendorBidDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VENDOR_BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *VendorBidDynamoRepository) ReplaceForTrade(ctx context.Context, estimateID, trade string, bids []entities.VendorBid) ([]entities.VendorBid, error) {
	existing, err := r.ListByEstimateAndTrade(ctx, estimateID, trade)
	if err != nil {
		return nil, err
	}

	for _, b := range existing {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: b.ID},
			},
		})
		if err != nil {
			return nil, err
		}
	}

	for _, b := range bids {
		it, err := toVendorBidItem(b)
		if err != nil {
			return nil, err
		}
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return nil, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		})
		if err != nil {
			return nil, err
		}
	}
	return bids, nil
}

func (r *VendorBidDynamoRepository) ListByEstimateAndTrade(ctx context.Context, estimateID, trade string) ([]entities.VendorBid, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bidsEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		FilterExpression:       aws.String("trade = :trade"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid":   &types.AttributeValueMemberS{Value: estimateID},
			":trade": &types.AttributeValueMemberS{Value: trade},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBidItems(out.Items)
}

func (r *VendorBidDynamoRepository) ListByEstimate(ctx context.Context, estimateID string) ([]entities.VendorBid, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bidsEstimateIDIndex),
		KeyConditionExpression: aws.String("estimate_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalBidItems(out.Items)
}

func (r *VendorBidDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BidStatus) (entities.VendorBid, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.VendorBid{}, nil
		}
		return entities.VendorBid{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.VendorBid{}, nil
	}

	var it vendorBidItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.VendorBid{}, err
	}
	return fromVendorBidItem(it)
}

func unmarshalBidItems(raw []map[string]types.AttributeValue) ([]entities.VendorBid, error) {
	items := make([]entities.VendorBid, 0, len(raw))
	for _, m := range raw {
		var it vendorBidItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		b, err := fromVendorBidItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, nil
}

func toVendorBidItem(b entities.VendorBid) (vendorBidItem, error) {
	var lineItems string
	if len(b.LineItems) > 0 {
		raw, err := json.Marshal(b.LineItems)
		if err != nil {
			return vendorBidItem{}, err
		}
		lineItems = string(raw)
	}
	return vendorBidItem{
		ID:          b.ID,
		EstimateID:  b.EstimateID,
		VendorName:  b.VendorName,
		Trade:       b.Trade,
		TotalAmount: floatToString(b.TotalAmount),
		LineItems:   lineItems,
		Confidence:  b.Confidence,
		Status:      string(b.Status),
		Inclusions:  b.Inclusions,
		Exclusions:  b.Exclusions,
		SubmittedAt: b.SubmittedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromVendorBidItem(it vendorBidItem) (entities.VendorBid, error) {
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)

	b := entities.VendorBid{
		ID:          it.ID,
		EstimateID:  it.EstimateID,
		VendorName:  it.VendorName,
		Trade:       it.Trade,
		TotalAmount: total,
		Confidence:  it.Confidence,
		Status:      entities.BidStatus(it.Status),
		Inclusions:  it.Inclusions,
		Exclusions:  it.Exclusions,
		SubmittedAt: submittedAt,
	}
	if it.LineItems != "" {
		if err := json.Unmarshal([]byte(it.LineItems), &b.LineItems); err != nil {
			return entities.VendorBid{}, err
		}
	}
	return b, nil
}
