package repository

import (
	"go.mongodb.org/mongo-driver/bson"
)

const mongoDatabase = "lightbill"

// toBSONFilter converts generic query filters to a bson document.
func toBSONFilter(filters map[string]interface{}) bson.M {
	out := bson.M{}
	for k, v := range filters {
		if k == "id" {
			k = "_id"
		}
		out[k] = v
	}
	return out
}
