package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fanhub/schema"

	"go.mongodb.org/mongo-driver/bson"
)

var ErrInvalidCondition = errors.New("invalid filter condition")

// Condition is one constraint on a field: equality on scalars and enums,
// or containment on reference collections. Exactly one side must be set.
type Condition struct {
	Equals   any
	Contains any
}

// Where is a logical AND of per-field conditions.
type Where map[string]Condition

// BuildFilter validates a Where clause against the collection schema and
// translates it into a mongo filter. Unknown fields fail fast rather
// than matching nothing.
func BuildFilter(c *schema.Collection, where Where, now time.Time) (bson.M, error) {
	clauses := make([]bson.M, 0, len(where))

	for name, cond := range where {
		spec, err := c.Field(name)
		if err != nil {
			return nil, err
		}

		if (cond.Equals == nil) == (cond.Contains == nil) {
			return nil, fmt.Errorf("%w: %s.%s needs exactly one of equals/contains", ErrInvalidCondition, c.Name, name)
		}

		switch spec.Kind {
		case schema.Virtual:
			// The only virtual filter is campaign "active": a stored
			// manual override wins, otherwise the date window decides.
			want, ok := cond.Equals.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s expects a boolean", ErrInvalidCondition, c.Name, name)
			}
			clauses = append(clauses, activeFilter(want, now))
		case schema.List:
			value := cond.Contains
			if value == nil {
				value = cond.Equals
			}
			clauses = append(clauses, bson.M{spec.Path: value})
		default:
			if cond.Contains != nil {
				return nil, fmt.Errorf("%w: %s.%s does not support contains", ErrInvalidCondition, c.Name, name)
			}
			clauses = append(clauses, bson.M{spec.Path: cond.Equals})
		}
	}

	switch len(clauses) {
	case 0:
		return bson.M{}, nil
	case 1:
		return clauses[0], nil
	default:
		return bson.M{"$and": clauses}, nil
	}
}

// noOverride matches documents where no manual override is stored.
var noOverride = bson.M{"$in": bson.A{nil}}

func activeFilter(want bool, now time.Time) bson.M {
	if want {
		return bson.M{"$or": bson.A{
			bson.M{"active": true},
			bson.M{
				"active":    noOverride,
				"startdate": bson.M{"$lte": now},
				"enddate":   bson.M{"$gte": now},
			},
		}}
	}
	return bson.M{"$or": bson.A{
		bson.M{"active": false},
		bson.M{
			"active": noOverride,
			"$or": bson.A{
				bson.M{"startdate": bson.M{"$gt": now}},
				bson.M{"enddate": bson.M{"$lt": now}},
			},
		},
	}}
}

// BuildSort translates a sort key ("eventDate", "-mentionCount") into a
// mongo sort document. An empty key keeps natural insertion order.
func BuildSort(c *schema.Collection, sort string) (bson.D, error) {
	if sort == "" {
		return nil, nil
	}

	dir := 1
	name := sort
	if strings.HasPrefix(sort, "-") {
		dir = -1
		name = sort[1:]
	}

	spec, err := c.Field(name)
	if err != nil {
		return nil, err
	}
	if !spec.Sortable {
		return nil, fmt.Errorf("%w: %s.%s is not sortable", ErrInvalidCondition, c.Name, name)
	}
	return bson.D{{Key: spec.Path, Value: dir}}, nil
}
