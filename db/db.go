package db

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const batchGetLimit = 10

// GetTrackTags fetches the curated tag lists for the given source
// filenames from a DynamoDB table keyed on PK = filename. Filenames with
// no item simply don't appear in the result.
func GetTrackTags(table string, filenames []string) (map[string][]string, error) {
	res := make(map[string][]string)

	if len(filenames) == 0 {
		return res, nil
	}

	cfg := &aws.Config{}
	if endpoint := os.Getenv("DYNAMO_ENDPOINT"); endpoint != "" {
		cfg.Region = aws.String("localhost")
		cfg.Endpoint = &endpoint
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, err
	}
	client := dynamodb.New(sess)

	// BatchGetItem caps at a handful of keys, so page through them.
	for start := 0; start < len(filenames); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(filenames) {
			end = len(filenames)
		}

		var keys []map[string]*dynamodb.AttributeValue
		for _, filename := range filenames[start:end] {
			key := make(map[string]*dynamodb.AttributeValue)
			key["PK"] = &dynamodb.AttributeValue{
				S: aws.String(filename),
			}
			keys = append(keys, key)
		}

		input := &dynamodb.BatchGetItemInput{
			RequestItems: map[string]*dynamodb.KeysAndAttributes{
				table: {Keys: keys},
			},
		}
		dbres, err := client.BatchGetItem(input)
		if err != nil {
			return nil, err
		}

		for _, v := range dbres.Responses[table] {
			pk := v["PK"]
			if pk == nil || pk.S == nil {
				continue
			}
			var tagList []string
			if attr := v["Tags"]; attr != nil {
				for _, t := range attr.SS {
					if t != nil {
						tagList = append(tagList, *t)
					}
				}
			}
			res[*pk.S] = tagList
		}
	}

	return res, nil
}
