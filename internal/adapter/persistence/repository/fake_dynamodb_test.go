package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a small in-memory table keyed by "id". It understands the
// attribute_(not_)exists(#id) conditions and single equality key conditions.
// Scan ignores FilterExpression and returns one item per page so callers must
// follow LastEvaluatedKey; the inputs are recorded for assertions.
type fakeDynamo struct {
	mu      sync.Mutex
	items   map[string]map[string]types.AttributeValue
	scans   []dynamodb.ScanInput
	queries []dynamodb.QueryInput
	err     error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(av map[string]types.AttributeValue) (string, error) {
	s, ok := av["id"].(*types.AttributeValueMemberS)
	if !ok {
		return "", errors.New("missing id")
	}
	return s.Value, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k, err := keyOf(params.Item)
	if err != nil {
		return nil, err
	}
	_, exists := f.items[k]
	if params.ConditionExpression != nil {
		switch *params.ConditionExpression {
		case "attribute_not_exists(#id)":
			if exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		case "attribute_exists(#id)":
			if !exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		}
	}
	f.items[k] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k, err := keyOf(params.Key)
	if err != nil {
		return nil, err
	}
	return &dynamodb.GetItemOutput{Item: f.items[k]}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	k, err := keyOf(params.Key)
	if err != nil {
		return nil, err
	}
	old, ok := f.items[k]
	delete(f.items, k)
	out := &dynamodb.DeleteItemOutput{}
	if ok && params.ReturnValues == types.ReturnValueAllOld {
		out.Attributes = old
	}
	return out, nil
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, *params)
	if f.err != nil {
		return nil, f.err
	}
	parts := strings.SplitN(*params.KeyConditionExpression, " = ", 2)
	if len(parts) != 2 {
		return nil, errors.New("unsupported key condition")
	}
	attr, placeholder := parts[0], parts[1]
	want := params.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS).Value

	var out []map[string]types.AttributeValue
	for _, k := range f.sortedKeys() {
		item := f.items[k]
		if v, ok := item[attr].(*types.AttributeValueMemberS); ok && v.Value == want {
			out = append(out, item)
		}
		if params.Limit != nil && int32(len(out)) >= *params.Limit {
			break
		}
	}
	return &dynamodb.QueryOutput{Items: out, Count: int32(len(out))}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scans = append(f.scans, *params)
	if f.err != nil {
		return nil, f.err
	}
	keys := f.sortedKeys()
	start := 0
	if params.ExclusiveStartKey != nil {
		last, err := keyOf(params.ExclusiveStartKey)
		if err != nil {
			return nil, err
		}
		start = sort.SearchStrings(keys, last) + 1
	}
	if start >= len(keys) {
		return &dynamodb.ScanOutput{}, nil
	}
	k := keys[start]
	out := &dynamodb.ScanOutput{
		Items: []map[string]types.AttributeValue{f.items[k]},
		Count: 1,
	}
	if start+1 < len(keys) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: k},
		}
	}
	return out, nil
}

func (f *fakeDynamo) sortedKeys() []string {
	keys := make([]string, 0, len(f.items))
	for k := range f.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
