package middleware

import (
	"testing"

	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/stretchr/testify/assert"
)

func TestRulesSkipDisabledResources(t *testing.T) {
	rules := Rules(map[string]float64{
		ResourceComment: 50,
		ResourceUpload:  0,
	})
	assert.Len(t, rules, 1)
	assert.Equal(t, ResourceComment, rules[0].Resource)
	assert.Equal(t, 50.0, rules[0].Threshold)
	assert.Equal(t, flow.Reject, rules[0].ControlBehavior)
	assert.Equal(t, uint32(1000), rules[0].StatIntervalInMs)
}
