package observer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusopt/hsaga/observer"
)

func TestNoopDiscardsEvents(t *testing.T) {
	var o observer.Observer = observer.Noop{}
	assert.NotPanics(t, func() {
		o.OnChainComplete(observer.ChainStats{})
		o.OnGeneration(observer.GenerationStats{})
	})
}

func TestFuncDispatchesOnlyConfiguredCallback(t *testing.T) {
	var sawChain, sawGeneration bool
	o := observer.Func{
		Chain: func(observer.ChainStats) { sawChain = true },
	}
	o.OnChainComplete(observer.ChainStats{})
	assert.True(t, sawChain)
	assert.NotPanics(t, func() { o.OnGeneration(observer.GenerationStats{}) })
	assert.False(t, sawGeneration)
}
