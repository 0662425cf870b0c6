package firebase

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Firestore struct {
	Client *firestore.Client
}

func NewFirestore(ctx context.Context, app *firebase.App) (*Firestore, error) {
	c, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}
	return &Firestore{Client: c}, nil
}

func (f *Firestore) Close() {
	if f == nil || f.Client == nil {
		return
	}
	_ = f.Client.Close()
}

func IsNotFound(err error) bool      { return status.Code(err) == codes.NotFound }
func IsAlreadyExists(err error) bool { return status.Code(err) == codes.AlreadyExists }

// DecodeAll drains it into a slice of T. setID receives the document ID so
// callers can copy it onto fields tagged firestore:"-".
func DecodeAll[T any](it *firestore.DocumentIterator, setID func(*T, string)) ([]T, error) {
	defer it.Stop()

	out := []T{}
	for {
		doc, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", doc.Ref.Path, err)
		}
		if setID != nil {
			setID(&v, doc.Ref.ID)
		}
		out = append(out, v)
	}
	return out, nil
}

// Count runs a server-side count aggregation over q.
func Count(ctx context.Context, q firestore.Query) (int, error) {
	res, err := q.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := res["all"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected count result %T", res["all"])
	}
	return int(v.GetIntegerValue()), nil
}

// Sum runs a server-side sum aggregation of path over q.
func Sum(ctx context.Context, q firestore.Query, path string) (float64, error) {
	res, err := q.NewAggregationQuery().WithSum(path, "total").Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := res["total"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected sum result %T", res["total"])
	}
	switch t := v.GetValueType().(type) {
	case *firestorepb.Value_IntegerValue:
		return float64(t.IntegerValue), nil
	case *firestorepb.Value_DoubleValue:
		return t.DoubleValue, nil
	default:
		return 0, nil
	}
}
