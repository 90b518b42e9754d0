package repository

import (
	"context"
	"errors"
	"time"

	"cnc_quote/internal/domain/entities"
	"cnc_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMaterialsTableName  = "materials"
	defaultFinishesTableName   = "finishes"
	defaultTolerancesTableName = "tolerances"
)

// The three catalog repositories share the same access pattern: PK id,
// conditional create, full-row conditional replace on update, and a filtered
// scan for the active set (catalog tables are small).

func putNew(ctx context.Context, ddb *dynamodb.Client, table string, av map[string]types.AttributeValue) error {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// putExistingByKey replaces a row and reports existed=false when the key is unknown.
func putExistingByKey(ctx context.Context, ddb *dynamodb.Client, table string, av map[string]types.AttributeValue, keyName string) (bool, error) {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": keyName,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func getByID(ctx context.Context, ddb *dynamodb.Client, table, id string) (map[string]types.AttributeValue, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func scanActive(ctx context.Context, ddb *dynamodb.Client, table string) ([]map[string]types.AttributeValue, error) {
	out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(table),
		FilterExpression: aws.String("#active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// --- materials ---

type materialItem struct {
	ID                  string `dynamodbav:"id"`
	Name                string `dynamodbav:"name"`
	DensityKgM3         string `dynamodbav:"density_kg_m3"`
	CostPerKg           string `dynamodbav:"cost_per_kg"`
	MachinabilityFactor string `dynamodbav:"machinability_factor"`
	Active              bool   `dynamodbav:"active"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName),
	}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.Material{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.Material{}, err
	}
	existed, err := putExistingByKey(ctx, r.ddb, r.tableName, av, "id")
	if err != nil {
		return entities.Material{}, err
	}
	if !existed {
		return entities.Material{}, nil
	}
	return m, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Material{}, err
	}
	if len(raw) == 0 {
		return entities.Material{}, nil
	}
	var it materialItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) ListActive(ctx context.Context) ([]entities.Material, error) {
	rows, err := scanActive(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Material, 0, len(rows))
	for _, raw := range rows {
		var it materialItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMaterialItem(it))
	}
	return items, nil
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:                  m.ID,
		Name:                m.Name,
		DensityKgM3:         floatToString(m.DensityKgM3),
		CostPerKg:           floatToString(m.CostPerKg),
		MachinabilityFactor: floatToString(m.MachinabilityFactor),
		Active:              m.Active,
		CreatedAt:           m.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           m.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Material{
		ID:                  it.ID,
		Name:                it.Name,
		DensityKgM3:         stringToFloat(it.DensityKgM3),
		CostPerKg:           stringToFloat(it.CostPerKg),
		MachinabilityFactor: stringToFloat(it.MachinabilityFactor),
		Active:              it.Active,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

// --- finishes ---

type finishItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	CostPerM2    string `dynamodbav:"cost_per_m2"`
	SetupFee     string `dynamodbav:"setup_fee"`
	LeadTimeDays int    `dynamodbav:"lead_time_days"`
	Active       bool   `dynamodbav:"active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type FinishDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFinishRepository = (*FinishDynamoRepository)(nil)

func NewFinishDynamoRepository(ddb *dynamodb.Client) *FinishDynamoRepository {
	return &FinishDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FINISHES_TABLE", defaultFinishesTableName),
	}
}

func (r *FinishDynamoRepository) Create(ctx context.Context, f entities.Finish) (entities.Finish, error) {
	av, err := attributevalue.MarshalMap(toFinishItem(f))
	if err != nil {
		return entities.Finish{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Finish{}, err
	}
	return f, nil
}

func (r *FinishDynamoRepository) Update(ctx context.Context, f entities.Finish) (entities.Finish, error) {
	av, err := attributevalue.MarshalMap(toFinishItem(f))
	if err != nil {
		return entities.Finish{}, err
	}
	existed, err := putExistingByKey(ctx, r.ddb, r.tableName, av, "id")
	if err != nil {
		return entities.Finish{}, err
	}
	if !existed {
		return entities.Finish{}, nil
	}
	return f, nil
}

func (r *FinishDynamoRepository) GetByID(ctx context.Context, id string) (entities.Finish, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Finish{}, err
	}
	if len(raw) == 0 {
		return entities.Finish{}, nil
	}
	var it finishItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Finish{}, err
	}
	return fromFinishItem(it), nil
}

func (r *FinishDynamoRepository) ListActive(ctx context.Context) ([]entities.Finish, error) {
	rows, err := scanActive(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Finish, 0, len(rows))
	for _, raw := range rows {
		var it finishItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFinishItem(it))
	}
	return items, nil
}

func toFinishItem(f entities.Finish) finishItem {
	return finishItem{
		ID:           f.ID,
		Name:         f.Name,
		CostPerM2:    floatToString(f.CostPerM2),
		SetupFee:     floatToString(f.SetupFee),
		LeadTimeDays: f.LeadTimeDays,
		Active:       f.Active,
		CreatedAt:    f.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    f.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFinishItem(it finishItem) entities.Finish {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Finish{
		ID:           it.ID,
		Name:         it.Name,
		CostPerM2:    stringToFloat(it.CostPerM2),
		SetupFee:     stringToFloat(it.SetupFee),
		LeadTimeDays: it.LeadTimeDays,
		Active:       it.Active,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// --- tolerances ---

type toleranceItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	MinMM          string `dynamodbav:"min_mm"`
	MaxMM          string `dynamodbav:"max_mm"`
	CostMultiplier string `dynamodbav:"cost_multiplier"`
	Active         bool   `dynamodbav:"active"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type ToleranceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IToleranceRepository = (*ToleranceDynamoRepository)(nil)

func NewToleranceDynamoRepository(ddb *dynamodb.Client) *ToleranceDynamoRepository {
	return &ToleranceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TOLERANCES_TABLE", defaultTolerancesTableName),
	}
}

func (r *ToleranceDynamoRepository) Create(ctx context.Context, t entities.Tolerance) (entities.Tolerance, error) {
	av, err := attributevalue.MarshalMap(toToleranceItem(t))
	if err != nil {
		return entities.Tolerance{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Tolerance{}, err
	}
	return t, nil
}

func (r *ToleranceDynamoRepository) Update(ctx context.Context, t entities.Tolerance) (entities.Tolerance, error) {
	av, err := attributevalue.MarshalMap(toToleranceItem(t))
	if err != nil {
		return entities.Tolerance{}, err
	}
	existed, err := putExistingByKey(ctx, r.ddb, r.tableName, av, "id")
	if err != nil {
		return entities.Tolerance{}, err
	}
	if !existed {
		return entities.Tolerance{}, nil
	}
	return t, nil
}

func (r *ToleranceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Tolerance, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return entities.Tolerance{}, err
	}
	if len(raw) == 0 {
		return entities.Tolerance{}, nil
	}
	var it toleranceItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Tolerance{}, err
	}
	return fromToleranceItem(it), nil
}

func (r *ToleranceDynamoRepository) ListActive(ctx context.Context) ([]entities.Tolerance, error) {
	rows, err := scanActive(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Tolerance, 0, len(rows))
	for _, raw := range rows {
		var it toleranceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromToleranceItem(it))
	}
	return items, nil
}

func toToleranceItem(t entities.Tolerance) toleranceItem {
	return toleranceItem{
		ID:             t.ID,
		Name:           t.Name,
		MinMM:          floatToString(t.MinMM),
		MaxMM:          floatToString(t.MaxMM),
		CostMultiplier: floatToString(t.CostMultiplier),
		Active:         t.Active,
		CreatedAt:      t.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      t.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromToleranceItem(it toleranceItem) entities.Tolerance {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Tolerance{
		ID:             it.ID,
		Name:           it.Name,
		MinMM:          stringToFloat(it.MinMM),
		MaxMM:          stringToFloat(it.MaxMM),
		CostMultiplier: stringToFloat(it.CostMultiplier),
		Active:         it.Active,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
