package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizResponseValidate(t *testing.T) {
	valid := QuizResponse{
		TargetRole:        "Backend Engineer",
		YearsOfExperience: "5",
		TargetCompanyType: "startup",
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing target role", func(t *testing.T) {
		q := valid
		q.TargetRole = ""
		assert.Error(t, q.Validate())
	})

	t.Run("missing years of experience", func(t *testing.T) {
		q := valid
		q.YearsOfExperience = ""
		assert.Error(t, q.Validate())
	})

	t.Run("missing company type", func(t *testing.T) {
		q := valid
		q.TargetCompanyType = ""
		assert.Error(t, q.Validate())
	})

	t.Run("problem solving out of range", func(t *testing.T) {
		q := valid
		score := 120
		q.ProblemSolving = &score
		assert.Error(t, q.Validate())
	})

	t.Run("optional fields absent", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})
}
