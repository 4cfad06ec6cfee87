package marshal

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgtype"
	"k8s.io/apimachinery/pkg/api/resource"
)

// ResourceQuantity adapts k8s resource.Quantity to pgx value/scan.
type ResourceQuantity resource.Quantity

func (a *ResourceQuantity) Equal(b *ResourceQuantity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	aq := resource.Quantity(*a)
	bq := resource.Quantity(*b)
	return aq.Equal(bq)
}

func (m ResourceQuantity) String() string {
	q := resource.Quantity(m)
	return q.String()
}

func (m ResourceQuantity) Value() (interface{}, error) {
	return m.String(), nil
}

func (m *ResourceQuantity) Scan(src interface{}) error {
	expr, ok := src.(string)
	if !ok {
		return fmt.Errorf("Quantity.Scan: unexpected type: %T", src)
	}

	q, err := resource.ParseQuantity(expr)
	if err != nil {
		return err
	}
	*m = ResourceQuantity(q)
	return nil
}

// JSONBValue encodes v for a jsonb column. nil maps encode as SQL null.
func JSONBValue(v map[string]interface{}) (pgtype.JSONB, error) {
	j := pgtype.JSONB{}
	if v == nil {
		j.Status = pgtype.Null
		return j, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return j, err
	}
	j.Bytes = raw
	j.Status = pgtype.Present
	return j, nil
}

// JSONBMap decodes a jsonb column scanned into j. SQL null yields nil.
func JSONBMap(j pgtype.JSONB) (map[string]interface{}, error) {
	if j.Status != pgtype.Present {
		return nil, nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(j.Bytes, &m); err != nil {
		return nil, err
	}
	return m, nil
}
