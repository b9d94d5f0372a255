package mongoclient

import (
	"errors"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

var (
	ErrNotStruct = errors.New("patchable must be a struct")
)

// MakeBsonM turns a patchable struct into a $set document. nil pointers and
// zero values are left out, pointers are stored by value.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.Indirect(reflect.ValueOf(patchable))
	if val.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	bsonM := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() || field.IsZero() {
			continue
		}

		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}

		if field.Kind() == reflect.Ptr {
			bsonM[tag.Name] = field.Elem().Interface()
		} else {
			bsonM[tag.Name] = field.Interface()
		}
	}
	return bsonM, nil
}
