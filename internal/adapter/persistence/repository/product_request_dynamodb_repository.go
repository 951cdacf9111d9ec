package repository

import (
	"context"
	"fmt"
	"sort"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/infrastructure/database"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const productRequestsServiceOrderIDIndex = "service_order_id-index"

type requestedProductItem struct {
	ProductID string `dynamodbav:"product_id,omitempty"`
	Code      string `dynamodbav:"code,omitempty"`
	Name      string `dynamodbav:"name"`
	Quantity  int    `dynamodbav:"quantity"`
}

type productRequestItem struct {
	ID               string                 `dynamodbav:"id"`
	ServiceOrderID   string                 `dynamodbav:"service_order_id"`
	ServiceOrderCode string                 `dynamodbav:"service_order_code"`
	Status           string                 `dynamodbav:"status"`
	Products         []requestedProductItem `dynamodbav:"products"`
	CreatedAt        string                 `dynamodbav:"created_at"`
}

// ProductRequestDynamoRepository persists product requests.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_order_id-index (PK: service_order_id)
type ProductRequestDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IProductRequestRepository = (*ProductRequestDynamoRepository)(nil)

func NewProductRequestDynamoRepository(ddb database.DynamoDBAPI, tableName string) *ProductRequestDynamoRepository {
	return &ProductRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductRequestDynamoRepository) Create(ctx context.Context, pr entities.ProductRequest) (entities.ProductRequest, error) {
	av, err := attributevalue.MarshalMap(toProductRequestItem(pr))
	if err != nil {
		return entities.ProductRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ProductRequest{}, fmt.Errorf("product request %s already exists", pr.ID)
		}
		return entities.ProductRequest{}, err
	}
	return pr, nil
}

// ListByServiceOrderID returns the requests of an order, oldest first.
func (r *ProductRequestDynamoRepository) ListByServiceOrderID(ctx context.Context, serviceOrderID string) ([]entities.ProductRequest, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(productRequestsServiceOrderIDIndex),
		KeyConditionExpression: aws.String("service_order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: serviceOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.ProductRequest, 0, len(raw))
	for _, av := range raw {
		var it productRequestItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProductRequestItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func toProductRequestItem(pr entities.ProductRequest) productRequestItem {
	products := make([]requestedProductItem, 0, len(pr.Products))
	for _, p := range pr.Products {
		products = append(products, requestedProductItem(p))
	}
	return productRequestItem{
		ID:               pr.ID,
		ServiceOrderID:   pr.ServiceOrderID,
		ServiceOrderCode: pr.ServiceOrderCode,
		Status:           string(pr.Status),
		Products:         products,
		CreatedAt:        formatTime(pr.CreatedAt),
	}
}

func fromProductRequestItem(it productRequestItem) entities.ProductRequest {
	products := make([]entities.RequestedProduct, 0, len(it.Products))
	for _, p := range it.Products {
		products = append(products, entities.RequestedProduct(p))
	}
	return entities.ProductRequest{
		ID:               it.ID,
		ServiceOrderID:   it.ServiceOrderID,
		ServiceOrderCode: it.ServiceOrderCode,
		Status:           entities.ProductRequestStatus(it.Status),
		Products:         products,
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
