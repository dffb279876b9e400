package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"preconstruct/internal/domain/entities"
	"preconstruct/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "estimates"

type estimateItem struct {
	ID            string `dynamodbav:"id"`
	ProjectName   string `dynamodbav:"project_name"`
	CSIDivision   string `dynamodbav:"csi_division,omitempty"`
	GrossSF       string `dynamodbav:"gross_sf"`
	NetSF         string `dynamodbav:"net_sf"`
	Rates         string `dynamodbav:"rates"`
	Categories    string `dynamodbav:"categories"`
	ApprovalSteps string `dynamodbav:"approval_steps"`
	BidSelections string `dynamodbav:"bid_selections"`
	Documents     string `dynamodbav:"documents"`
	Allowances    string `dynamodbav:"allowances"`
	Notes         string `dynamodbav:"notes,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists the Estimate aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The aggregate is stored as one item: collections are JSON blobs replaced
// whole on every save, which matches the domain's replace-collection
// mutation model and keeps a save atomic for the single-writer caller.

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	rates, err := json.Marshal(e.Rates)
	if err != nil {
		return estimateItem{}, err
	}
	categories, err := marshalCollection(e.Categories)
	if err != nil {
		return estimateItem{}, err
	}
	steps, err := marshalCollection(e.ApprovalSteps)
	if err != nil {
		return estimateItem{}, err
	}
	selections, err := json.Marshal(e.BidSelections)
	if err != nil {
		return estimateItem{}, err
	}
	documents, err := marshalCollection(e.Documents)
	if err != nil {
		return estimateItem{}, err
	}
	allowances, err := marshalCollection(e.Allowances)
	if err != nil {
		return estimateItem{}, err
	}

	return estimateItem{
		ID:            e.ID,
		ProjectName:   e.ProjectName,
		CSIDivision:   e.CSIDivision,
		GrossSF:       floatToString(e.GrossSF),
		NetSF:         floatToString(e.NetSF),
		Rates:         string(rates),
		Categories:    string(categories),
		ApprovalSteps: string(steps),
		BidSelections: string(selections),
		Documents:     string(documents),
		Allowances:    string(allowances),
		Notes:         e.Notes,
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

// marshalCollection normalizes nil collections to "[]" so a round trip never
// turns an empty list into null.
func marshalCollection(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	grossSF, _ := strconv.ParseFloat(it.GrossSF, 64)
	netSF, _ := strconv.ParseFloat(it.NetSF, 64)

	e := entities.Estimate{
		ID:            it.ID,
		ProjectName:   it.ProjectName,
		CSIDivision:   it.CSIDivision,
		GrossSF:       grossSF,
		NetSF:         netSF,
		Notes:         it.Notes,
		Status:        entities.EstimateStatus(it.Status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		BidSelections: map[string]string{},
	}

	if it.Rates != "" {
		if err := json.Unmarshal([]byte(it.Rates), &e.Rates); err != nil {
			return entities.Estimate{}, err
		}
	}
	if it.Categories != "" {
		if err := json.Unmarshal([]byte(it.Categories), &e.Categories); err != nil {
			return entities.Estimate{}, err
		}
	}
	if it.ApprovalSteps != "" {
		if err := json.Unmarshal([]byte(it.ApprovalSteps), &e.ApprovalSteps); err != nil {
			return entities.Estimate{}, err
		}
	}
	if it.BidSelections != "" {
		if err := json.Unmarshal([]byte(it.BidSelections), &e.BidSelections); err != nil {
			return entities.Estimate{}, err
		}
	}
	if it.Documents != "" {
		if err := json.Unmarshal([]byte(it.Documents), &e.Documents); err != nil {
			return entities.Estimate{}, err
		}
	}
	if it.Allowances != "" {
		if err := json.Unmarshal([]byte(it.Allowances), &e.Allowances); err != nil {
			return entities.Estimate{}, err
		}
	}
	return e, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
