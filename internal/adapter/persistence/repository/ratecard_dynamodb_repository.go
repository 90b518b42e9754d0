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

const defaultRateCardsTableName = "rate_cards"

type rateCardItem struct {
	ID              string            `dynamodbav:"id"`
	Region          string            `dynamodbav:"region"`
	Currency        string            `dynamodbav:"currency"`
	RatesPerMinute  map[string]string `dynamodbav:"rates_per_minute"`
	MachineSetupFee string            `dynamodbav:"machine_setup_fee"`
	TaxRate         string            `dynamodbav:"tax_rate"`
	ShippingFlat    string            `dynamodbav:"shipping_flat"`
	Active          bool              `dynamodbav:"active"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
}

// RateCardDynamoRepository persists regional rate cards in DynamoDB.
//
// Table requirements:
//   - PK: region (string)
//
// Region is the PK, which enforces one card per region and makes the pricing
// lookup a single GetItem.

type RateCardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateCardRepository = (*RateCardDynamoRepository)(nil)

func NewRateCardDynamoRepository(ddb *dynamodb.Client) *RateCardDynamoRepository {
	return &RateCardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_CARDS_TABLE", defaultRateCardsTableName),
	}
}

func (r *RateCardDynamoRepository) Create(ctx context.Context, rc entities.RateCard) (entities.RateCard, error) {
	av, err := attributevalue.MarshalMap(toRateCardItem(rc))
	if err != nil {
		return entities.RateCard{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#region)"),
		ExpressionAttributeNames: map[string]string{
			"#region": "region",
		},
	})
	if err != nil {
		return entities.RateCard{}, err
	}
	return rc, nil
}

func (r *RateCardDynamoRepository) Update(ctx context.Context, rc entities.RateCard) (entities.RateCard, error) {
	av, err := attributevalue.MarshalMap(toRateCardItem(rc))
	if err != nil {
		return entities.RateCard{}, err
	}
	existed, err := putExistingByKey(ctx, r.ddb, r.tableName, av, "region")
	if err != nil {
		return entities.RateCard{}, err
	}
	if !existed {
		return entities.RateCard{}, nil
	}
	return rc, nil
}

func (r *RateCardDynamoRepository) GetActiveByRegion(ctx context.Context, region string) (entities.RateCard, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"region": &types.AttributeValueMemberS{Value: region},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RateCard{}, err
	}
	if len(out.Item) == 0 {
		return entities.RateCard{}, nil
	}

	var it rateCardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RateCard{}, err
	}
	if !it.Active {
		return entities.RateCard{}, nil
	}
	return fromRateCardItem(it), nil
}

func (r *RateCardDynamoRepository) ListActive(ctx context.Context) ([]entities.RateCard, error) {
	rows, err := scanActive(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	items := make([]entities.RateCard, 0, len(rows))
	for _, raw := range rows {
		var it rateCardItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRateCardItem(it))
	}
	return items, nil
}

func toRateCardItem(rc entities.RateCard) rateCardItem {
	rates := make(map[string]string, len(rc.RatesPerMinute))
	for class, rate := range rc.RatesPerMinute {
		rates[string(class)] = floatToString(rate)
	}
	return rateCardItem{
		ID:              rc.ID,
		Region:          rc.Region,
		Currency:        rc.Currency,
		RatesPerMinute:  rates,
		MachineSetupFee: floatToString(rc.MachineSetupFee),
		TaxRate:         floatToString(rc.TaxRate),
		ShippingFlat:    floatToString(rc.ShippingFlat),
		Active:          rc.Active,
		CreatedAt:       rc.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       rc.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRateCardItem(it rateCardItem) entities.RateCard {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	rates := make(map[entities.MachineClass]float64, len(it.RatesPerMinute))
	for class, rate := range it.RatesPerMinute {
		rates[entities.MachineClass(class)] = stringToFloat(rate)
	}
	return entities.RateCard{
		ID:              it.ID,
		Region:          it.Region,
		Currency:        it.Currency,
		RatesPerMinute:  rates,
		MachineSetupFee: stringToFloat(it.MachineSetupFee),
		TaxRate:         stringToFloat(it.TaxRate),
		ShippingFlat:    stringToFloat(it.ShippingFlat),
		Active:          it.Active,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
