package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"mecanica_os/internal/domain"
	"mecanica_os/internal/domain/entities"
	"mecanica_os/internal/domain/status"
	"mecanica_os/internal/infrastructure/database"
	"mecanica_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const serviceOrdersCodeIndex = "code-index"

type lineItemItem struct {
	ProductID         string   `dynamodbav:"product_id,omitempty"`
	Code              string   `dynamodbav:"code"`
	Name              string   `dynamodbav:"name"`
	Quantity          int      `dynamodbav:"quantity"`
	SalePrice         string   `dynamodbav:"sale_price"`
	CostUnitPrice     string   `dynamodbav:"cost_unit_price"`
	GrossProfitMargin string   `dynamodbav:"gross_profit_margin"`
	ProviderIDs       []string `dynamodbav:"provider_ids,omitempty"`
	Observations      string   `dynamodbav:"observations,omitempty"`
	TotalValue        string   `dynamodbav:"total_value"`
}

type serviceOrderItem struct {
	ID                     string         `dynamodbav:"id"`
	Code                   string         `dynamodbav:"code"`
	ClientID               string         `dynamodbav:"client_id"`
	VehicleID              string         `dynamodbav:"vehicle_id,omitempty"`
	Status                 string         `dynamodbav:"status"`
	EntryDate              string         `dynamodbav:"entry_date"`
	EntryDay               string         `dynamodbav:"entry_day"`
	Deadline               string         `dynamodbav:"deadline,omitempty"`
	LineItems              []lineItemItem `dynamodbav:"line_items"`
	Discount               string         `dynamodbav:"discount"`
	TotalValueGeneral      string         `dynamodbav:"total_value_general"`
	TotalValueWithDiscount string         `dynamodbav:"total_value_with_discount,omitempty"`
	Paid                   bool           `dynamodbav:"paid"`
	CreatedAt              string         `dynamodbav:"created_at"`
	UpdatedAt              string         `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//
// entry_day (YYYY-MM-DD in the shop's timezone) is denormalized for the date
// filter.
type ServiceOrderDynamoRepository struct {
	ddb       database.DynamoDBAPI
	tableName string
	loc       *time.Location
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb database.DynamoDBAPI, tableName string, loc *time.Location) *ServiceOrderDynamoRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &ServiceOrderDynamoRepository{ddb: ddb, tableName: tableName, loc: loc}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(r.toItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceOrder{}, fmt.Errorf("service order %s already exists", o.ID)
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}
	return unmarshalServiceOrder(out.Item)
}

func (r *ServiceOrderDynamoRepository) GetByCode(ctx context.Context, code string) (entities.ServiceOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceOrdersCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceOrder{}, nil
	}
	return unmarshalServiceOrder(out.Items[0])
}

// List scans with a filter expression built from the supplied keys only.
// Results are newest entry first.
func (r *ServiceOrderDynamoRepository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.ServiceOrder, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values := buildFilterExpression(filter); expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeValues = values
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
	}

	orders, err := r.scanOrders(ctx, in)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].EntryDate.After(orders[j].EntryDate)
	})
	return orders, nil
}

func buildFilterExpression(filter entities.OrderFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if v, ok := filter[entities.FilterClientID]; ok {
		conds = append(conds, "client_id = :client_id")
		values[":client_id"] = &types.AttributeValueMemberS{Value: v}
	}
	if v, ok := filter[entities.FilterDate]; ok {
		conds = append(conds, "entry_day = :entry_day")
		values[":entry_day"] = &types.AttributeValueMemberS{Value: v}
	}
	if v, ok := filter[entities.FilterCode]; ok {
		conds = append(conds, "contains(code, :code)")
		values[":code"] = &types.AttributeValueMemberS{Value: v}
	}
	if v, ok := filter[entities.FilterStatus]; ok {
		// status is a reserved word
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: v}
	}
	if v, ok := filter[entities.FilterPaid]; ok {
		conds = append(conds, "paid = :paid")
		values[":paid"] = &types.AttributeValueMemberBOOL{Value: v == entities.PaidYes}
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), names, values
}

func (r *ServiceOrderDynamoRepository) ListWithDeadlineBefore(ctx context.Context, before time.Time) ([]entities.ServiceOrder, error) {
	return r.scanOrders(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("attribute_exists(deadline) AND deadline < :before"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":before": &types.AttributeValueMemberS{Value: formatTime(before)},
		},
	})
}

// ListByEntryDateRange returns orders with from <= entry_date < to.
func (r *ServiceOrderDynamoRepository) ListByEntryDateRange(ctx context.Context, from, to time.Time) ([]entities.ServiceOrder, error) {
	return r.scanOrders(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("entry_date >= :from AND entry_date < :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	})
}

// Update replaces the stored order. It fails with domain.ErrNotFound when the
// order was deleted concurrently.
func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(r.toItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceOrder{}, fmt.Errorf("service order %s: %w", o.ID, domain.ErrNotFound)
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *ServiceOrderDynamoRepository) scanOrders(ctx context.Context, in *dynamodb.ScanInput) ([]entities.ServiceOrder, error) {
	raw, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	orders := make([]entities.ServiceOrder, 0, len(raw))
	for _, item := range raw {
		o, err := unmarshalServiceOrder(item)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func unmarshalServiceOrder(av map[string]types.AttributeValue) (entities.ServiceOrder, error) {
	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) toItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:                o.ID,
		Code:              o.Code,
		ClientID:          o.ClientID,
		VehicleID:         o.VehicleID,
		Status:            string(o.Status),
		EntryDate:         formatTime(o.EntryDate),
		Deadline:          formatTimePtr(o.Deadline),
		LineItems:         make([]lineItemItem, 0, len(o.LineItems)),
		Discount:          formatDecimal(o.Discount),
		TotalValueGeneral: formatDecimal(o.TotalValueGeneral),
		Paid:              o.Paid,
		CreatedAt:         formatTime(o.CreatedAt),
		UpdatedAt:         formatTime(o.UpdatedAt),
	}
	if !o.EntryDate.IsZero() {
		it.EntryDay = o.EntryDate.In(r.loc).Format("2006-01-02")
	}
	if o.TotalValueWithDiscount != nil {
		it.TotalValueWithDiscount = formatDecimal(*o.TotalValueWithDiscount)
	}
	for _, li := range o.LineItems {
		it.LineItems = append(it.LineItems, lineItemItem{
			ProductID:         li.ProductID,
			Code:              li.Code,
			Name:              li.Name,
			Quantity:          li.Quantity,
			SalePrice:         formatDecimal(li.SalePrice),
			CostUnitPrice:     formatDecimal(li.CostUnitPrice),
			GrossProfitMargin: formatDecimal(li.GrossProfitMargin),
			ProviderIDs:       li.ProviderIDs,
			Observations:      li.Observations,
			TotalValue:        formatDecimal(li.TotalValue),
		})
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:                it.ID,
		Code:              it.Code,
		ClientID:          it.ClientID,
		VehicleID:         it.VehicleID,
		Status:            status.Code(it.Status),
		EntryDate:         parseTime(it.EntryDate),
		Deadline:          parseTimePtr(it.Deadline),
		LineItems:         make([]entities.LineItem, 0, len(it.LineItems)),
		Discount:          parseDecimal(it.Discount),
		TotalValueGeneral: parseDecimal(it.TotalValueGeneral),
		Paid:              it.Paid,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.TotalValueWithDiscount != "" {
		v := parseDecimal(it.TotalValueWithDiscount)
		o.TotalValueWithDiscount = &v
	}
	for _, li := range it.LineItems {
		o.LineItems = append(o.LineItems, entities.LineItem{
			ProductID:         li.ProductID,
			Code:              li.Code,
			Name:              li.Name,
			Quantity:          li.Quantity,
			SalePrice:         parseDecimal(li.SalePrice),
			CostUnitPrice:     parseDecimal(li.CostUnitPrice),
			GrossProfitMargin: parseDecimal(li.GrossProfitMargin),
			ProviderIDs:       li.ProviderIDs,
			Observations:      li.Observations,
			TotalValue:        parseDecimal(li.TotalValue),
		})
	}
	return o
}
