// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package group_generator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

func drain(o *Odometer) [][]int {
	result := make([][]int, 0)
	for next := o.Next(); next != nil; next = o.Next() {
		result = append(result, next)
	}
	return result
}

func TestOdometer_Next(t *testing.T) {
	tests := []struct {
		name  string
		radix []int
		want  [][]int
	}{
		{
			name:  "2x3",
			radix: []int{2, 3},
			want:  [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
		},
		{
			name:  "single values",
			radix: []int{1, 1},
			want:  [][]int{{0, 0}},
		},
		{
			name:  "first member has one job",
			radix: []int{1, 2, 2},
			want:  [][]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1}},
		},
		{
			name:  "member without jobs",
			radix: []int{3, 0, 2},
			want:  [][]int{},
		},
		{
			name:  "no members",
			radix: []int{},
			want:  [][]int{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, drain(NewOdometer(tt.radix)))
		})
	}
}

func TestOdometer_MatchesCartesianProduct(t *testing.T) {
	radixes := [][]int{
		{2, 2},
		{3, 1, 4},
		{10, 10, 10, 10},
		{1, 7, 1, 3},
		{5, 9},
	}
	for _, radix := range radixes {
		t.Run(fmt.Sprintf("%v", radix), func(t *testing.T) {
			o := NewOdometer(radix)
			got := drain(o)

			want := combin.Cartesian(radix)
			require.Len(t, got, len(want))
			assert.Equal(t, want, got)
			assert.Equal(t, len(want), o.Count())

			// the all-zero assignment comes first and only once
			zeros := 0
			for _, assignment := range got {
				if sum(assignment) == 0 {
					zeros++
				}
			}
			assert.Equal(t, make([]int, len(radix)), got[0])
			assert.Equal(t, 1, zeros)
		})
	}
}

func TestOdometer_Reset(t *testing.T) {
	o := NewOdometer([]int{2, 2})
	first := drain(o)
	require.Nil(t, o.Next(), "exhausted odometer keeps returning nil")

	o.Reset()
	assert.Equal(t, first, drain(o))
}

func TestOdometer_CallerOwnsAssignment(t *testing.T) {
	o := NewOdometer([]int{2, 2})
	first := o.Next()
	first[1] = 9

	assert.Equal(t, []int{0, 1}, o.Next())
}

func TestOdometer_Count(t *testing.T) {
	assert.Equal(t, 6, NewOdometer([]int{2, 3}).Count())
	assert.Equal(t, 0, NewOdometer([]int{2, 0}).Count())
	assert.Equal(t, 0, NewOdometer(nil).Count())
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
