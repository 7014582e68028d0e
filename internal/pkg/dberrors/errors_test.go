package dberrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestDuplicateKeyField(t *testing.T) {
	we := mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: placement_portal.students index: email_unique dup key: { email: "a@b.com" }`,
	}}}
	assert.True(t, IsDuplicateKey(we))
	assert.Equal(t, "email", DuplicateKeyField(we))

	byIndex := errors.New(`E11000 duplicate key error collection: placement_portal.faculty index: contactNumber_unique`)
	assert.Equal(t, "contactNumber", DuplicateKeyField(byIndex))

	assert.Equal(t, "unknown", DuplicateKeyField(errors.New("E11000")))
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsDuplicateKey(errors.New("timeout")))
}
