package models

// Sentiment is the label assigned to a review when it is created.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Sentiments lists every label the classifier can produce.
var Sentiments = []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral}

// Review is an immutable record of submitted text and its computed sentiment.
// CreatedAt is stored as an ISO-8601 UTC string, not managed by gorm.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Sentiment Sentiment `gorm:"type:text;not null;index" json:"sentiment"`
	CreatedAt string    `gorm:"type:text;not null;autoCreateTime:false" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
