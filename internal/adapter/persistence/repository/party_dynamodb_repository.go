package repository

import (
	"context"

	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/infrastructure/database"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Client, vehicle and product tables are written by the registration service.
// These repositories only read them by primary key (id).

type clientItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email,omitempty"`
	Phone string `dynamodbav:"phone,omitempty"`
}

type vehicleItem struct {
	ID           string `dynamodbav:"id"`
	ClientID     string `dynamodbav:"client_id,omitempty"`
	Name         string `dynamodbav:"name"`
	LicensePlate string `dynamodbav:"license_plate"`
}

type catalogProductItem struct {
	ID                string   `dynamodbav:"id"`
	Code              string   `dynamodbav:"code"`
	Name              string   `dynamodbav:"name"`
	CostUnitPrice     string   `dynamodbav:"cost_unit_price"`
	SalePrice         string   `dynamodbav:"sale_price"`
	GrossProfitMargin string   `dynamodbav:"gross_profit_margin"`
	ProviderIDs       []string `dynamodbav:"provider_ids,omitempty"`
	Observations      string   `dynamodbav:"observations,omitempty"`
}

// getByID loads one item into out. found is false when the key is absent.
func getByID(ctx context.Context, ddb database.DynamoDBAPI, table, id string, out any) (found bool, err error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

type ClientDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb database.DynamoDBAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return entities.Client{ID: it.ID, Name: it.Name, Email: it.Email, Phone: it.Phone}, nil
}

type VehicleDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb database.DynamoDBAPI, tableName string) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	var it vehicleItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return entities.Vehicle{
		ID:           it.ID,
		ClientID:     it.ClientID,
		Name:         it.Name,
		LicensePlate: it.LicensePlate,
	}, nil
}

type CatalogProductDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
}

var _ interfaces.ICatalogProductRepository = (*CatalogProductDynamoRepository)(nil)

func NewCatalogProductDynamoRepository(ddb database.DynamoDBAPI, tableName string) *CatalogProductDynamoRepository {
	return &CatalogProductDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CatalogProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogProduct, error) {
	var it catalogProductItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.CatalogProduct{}, err
	}
	return entities.CatalogProduct{
		ID:                it.ID,
		Code:              it.Code,
		Name:              it.Name,
		CostUnitPrice:     parseDecimal(it.CostUnitPrice),
		SalePrice:         parseDecimal(it.SalePrice),
		GrossProfitMargin: parseDecimal(it.GrossProfitMargin),
		ProviderIDs:       it.ProviderIDs,
		Observations:      it.Observations,
	}, nil
}
