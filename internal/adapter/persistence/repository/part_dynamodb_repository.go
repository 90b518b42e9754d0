package repository

import (
	"context"
	"time"

	"cnc_quote/internal/domain/entities"
	"cnc_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPartsTableName = "parts"

type partItem struct {
	ID             string         `dynamodbav:"id"`
	CustomerID     string         `dynamodbav:"customer_id,omitempty"`
	Name           string         `dynamodbav:"name"`
	VolumeMM3      string         `dynamodbav:"volume_mm3"`
	SurfaceAreaMM2 string         `dynamodbav:"surface_area_mm2"`
	BBoxXMM        string         `dynamodbav:"bbox_x_mm"`
	BBoxYMM        string         `dynamodbav:"bbox_y_mm"`
	BBoxZMM        string         `dynamodbav:"bbox_z_mm"`
	Meta           map[string]any `dynamodbav:"meta,omitempty"`
	CreatedAt      string         `dynamodbav:"created_at"`
}

// PartDynamoRepository persists Part geometry in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Geometry is write-once: Create refuses to overwrite an existing id, and no
// update path exists.

type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	it := toPartItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Part{}, err
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
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:             p.ID,
		CustomerID:     p.CustomerID,
		Name:           p.Name,
		VolumeMM3:      floatToString(p.VolumeMM3),
		SurfaceAreaMM2: floatToString(p.SurfaceAreaMM2),
		BBoxXMM:        floatToString(p.BoundingBox.XMM),
		BBoxYMM:        floatToString(p.BoundingBox.YMM),
		BBoxZMM:        floatToString(p.BoundingBox.ZMM),
		Meta:           p.Meta,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPartItem(it partItem) entities.Part {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Part{
		ID:             it.ID,
		CustomerID:     it.CustomerID,
		Name:           it.Name,
		VolumeMM3:      stringToFloat(it.VolumeMM3),
		SurfaceAreaMM2: stringToFloat(it.SurfaceAreaMM2),
		BoundingBox: entities.BoundingBox{
			XMM: stringToFloat(it.BBoxXMM),
			YMM: stringToFloat(it.BBoxYMM),
			ZMM: stringToFloat(it.BBoxZMM),
		},
		Meta:      it.Meta,
		CreatedAt: createdAt,
	}
}
