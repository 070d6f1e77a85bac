// internal/domain/models/image.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Image records an uploaded file. Nothing references images by id;
// clients copy the returned URL into a post's imageUrl field.
type Image struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	FileName    string             `bson:"image" json:"image"`
	ContentType string             `bson:"contentType" json:"contentType"`
	URL         string             `bson:"imageUrl" json:"imageUrl"`
}
