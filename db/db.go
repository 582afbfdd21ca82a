package db

import (
	"strings"

	"github.com/tonalhq/tonal/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetProgressions fetches named chord-progression presets. Records hold
// the progression as a space-separated list of chord spans ("Bdim:960
// Em11 G7") plus an optional renderer name.
func GetProgressions(names []string) map[string]model.Progression {
	if len(names) > 10 {
		panic("Not supposed to pass in more than 10 names!")
	}

	res := make(map[string]model.Progression)

	if len(names) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	endpoint := "http://localhost:8000"
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			"tonal-progressions": {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses["tonal-progressions"] {
		var p model.Progression
		p.Name = *v["PK"].S
		if v["Render"] != nil && v["Render"].S != nil {
			p.Render = *v["Render"].S
		}
		for _, field := range strings.Fields(*v["Chords"].S) {
			span, err := model.ParseChordSpan(field)
			if err != nil {
				panic("Bad chord span in preset " + p.Name + ": " + err.Error())
			}
			p.Chords = append(p.Chords, span)
		}
		res[p.Name] = p
	}

	return res
}
