// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package group_generator

// Odometer generates every assignment of one index per digit, one at a time.
// Digit i counts from 0 up to radix[i]-1 and the last digit varies fastest:
//
//	radix [2 3] -> [0 0] [0 1] [0 2] [1 0] [1 1] [1 2]
//
// The walk ends the first time the digits roll back to all zero, so it does not
// depend on knowing the total count up front.
type Odometer struct {
	radix   []int
	digits  []int
	started bool
	done    bool
}

func NewOdometer(radix []int) *Odometer {
	o := &Odometer{
		radix:  append([]int{}, radix...),
		digits: make([]int, len(radix)),
	}
	o.Reset()
	return o
}

// Reset rewinds the odometer to the all-zero assignment.
func (o *Odometer) Reset() {
	for i := range o.digits {
		o.digits[i] = 0
	}
	o.started = false
	// a digit with no values means there is nothing to walk
	o.done = len(o.radix) == 0
	for _, r := range o.radix {
		if r <= 0 {
			o.done = true
		}
	}
}

// Next returns the next assignment. It returns nil when every assignment has been produced.
// The returned slice is owned by the caller.
func (o *Odometer) Next() []int {
	if o.done {
		return nil
	}

	if o.started {
		o.increment()
		if o.isZero() {
			o.done = true
			return nil
		}
	}
	o.started = true

	return append([]int{}, o.digits...)
}

// Count returns the number of assignments a full walk produces.
func (o *Odometer) Count() int {
	if len(o.radix) == 0 {
		return 0
	}
	count := 1
	for _, r := range o.radix {
		if r <= 0 {
			return 0
		}
		count *= r
	}
	return count
}

// increment adds one to the last digit and carries leftward on overflow.
func (o *Odometer) increment() {
	for i := len(o.digits) - 1; i >= 0; i-- {
		o.digits[i]++
		if o.digits[i] < o.radix[i] {
			return
		}
		o.digits[i] = 0
	}
}

func (o *Odometer) isZero() bool {
	for _, d := range o.digits {
		if d != 0 {
			return false
		}
	}
	return true
}
