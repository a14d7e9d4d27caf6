// internal/domain/models/record.go
package models

// Record is one insight row of the Data collection.
//
// Records are read-only: nothing in datavizz creates, updates or deletes
// them. Every field uses a lenient type because the source dataset is
// loosely typed: the same field is a number in some documents and a string
// (often empty) in others, and _id is not always an ObjectID.
type Record struct {
	ID         ID     `bson:"_id" json:"_id"`
	EndYear    Year   `bson:"end_year" json:"end_year"`
	StartYear  Year   `bson:"start_year" json:"start_year"`
	Intensity  Number `bson:"intensity" json:"intensity"`
	Likelihood Number `bson:"likelihood" json:"likelihood"`
	Relevance  Number `bson:"relevance" json:"relevance"`
	Sector     Text   `bson:"sector" json:"sector"`
	Topic      Text   `bson:"topic" json:"topic"`
	Region     Text   `bson:"region" json:"region"`
	Pestle     Text   `bson:"pestle" json:"pestle"`
	Source     Text   `bson:"source" json:"source"`
	Swot       Text   `bson:"swot" json:"swot"`
	Country    Text   `bson:"country" json:"country"`

	// Free text, carried through but never filtered or aggregated.
	Insight   Text `bson:"insight" json:"insight"`
	URL       Text `bson:"url" json:"url"`
	Title     Text `bson:"title" json:"title"`
	Impact    Text `bson:"impact" json:"impact"`
	Added     Text `bson:"added" json:"added"`
	Published Text `bson:"published" json:"published"`
}
