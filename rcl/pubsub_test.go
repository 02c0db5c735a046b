package rcl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rosmesh/rosidl-runtime/msg/sensor"
	"github.com/rosmesh/rosidl-runtime/seq"
)

func TestPublishSubscribeRoundTrip(t *testing.T) {
	ctx := newTestContext(t)
	node, err := ctx.NewNode("thermo")
	if err != nil {
		t.Fatalf("NewNode failed: %v", err)
	}

	sub, err := NewSubscription[sensor.Temperature](node, "temperature")
	if err != nil {
		t.Fatalf("NewSubscription failed: %v", err)
	}
	defer sub.Close()

	pub, err := NewPublisher[sensor.Temperature](node, "temperature")
	if err != nil {
		t.Fatalf("NewPublisher failed: %v", err)
	}
	if pub.Topic() != sub.Topic() {
		t.Fatalf("topics diverge: %q vs %q", pub.Topic(), sub.Topic())
	}
	if pub.Topic() != "/temperature" {
		t.Errorf("topic = %q, want /temperature", pub.Topic())
	}

	sent := sensor.Temperature{Stamp: sensor.Stamp{Sec: 7}, Celsius: 21.5}
	if err := pub.Publish(&sent); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := sub.Next(waitCtx)
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	if *got != sent {
		t.Errorf("received %+v, want %+v", *got, sent)
	}
}

func TestPublishSubscribeCarriesSequences(t *testing.T) {
	ctx := newTestContext(t)
	node, err := ctx.NewNode("lidar")
	if err != nil {
		t.Fatalf("NewNode failed: %v", err)
	}

	sub, err := NewSubscription[sensor.PointCloud](node, "cloud")
	if err != nil {
		t.Fatalf("NewSubscription failed: %v", err)
	}
	defer sub.Close()

	pub, err := NewPublisher[sensor.PointCloud](node, "cloud")
	if err != nil {
		t.Fatalf("NewPublisher failed: %v", err)
	}

	sent := sensor.PointCloud{
		Stamp:       sensor.Stamp{Sec: 3, Nanosec: 250},
		Points:      seq.Of(sensor.Point{X: 1, Y: 2, Z: 3}, sensor.Point{X: 4}),
		Intensities: seq.Of[seq.Float32](0.1, 0.9),
	}
	defer sent.Fini()

	if err := pub.Publish(&sent); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got, err := sub.Next(waitCtx)
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	defer got.Fini()

	if got.Stamp != sent.Stamp {
		t.Errorf("stamp = %+v, want %+v", got.Stamp, sent.Stamp)
	}
	if !seq.Equal(&got.Points, &sent.Points) {
		t.Errorf("points = %v, want %v", got.Points.AsSlice(), sent.Points.AsSlice())
	}
	if !seq.Equal(&got.Intensities, &sent.Intensities) {
		t.Errorf("intensities = %v, want %v", got.Intensities.AsSlice(), sent.Intensities.AsSlice())
	}
}

func TestSubscriptionRejectsMismatchedType(t *testing.T) {
	ctx := newTestContext(t)
	node, err := ctx.NewNode("mixed")
	if err != nil {
		t.Fatalf("NewNode failed: %v", err)
	}

	sub, err := NewSubscription[sensor.PointCloud](node, "data")
	if err != nil {
		t.Fatalf("NewSubscription failed: %v", err)
	}
	defer sub.Close()

	pub, err := NewPublisher[sensor.Temperature](node, "data")
	if err != nil {
		t.Fatalf("NewPublisher failed: %v", err)
	}
	if err := pub.Publish(&sensor.Temperature{Celsius: 30}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = sub.Next(waitCtx)
	var rclErr *Error
	if !errors.As(err, &rclErr) || rclErr.Code != RetInvalidArgument {
		t.Errorf("error = %v, want code %v", err, RetInvalidArgument)
	}
}

func TestNextHonorsContext(t *testing.T) {
	ctx := newTestContext(t)
	node, err := ctx.NewNode("idle")
	if err != nil {
		t.Fatalf("NewNode failed: %v", err)
	}
	sub, err := NewSubscription[sensor.Temperature](node, "silence")
	if err != nil {
		t.Fatalf("NewSubscription failed: %v", err)
	}
	defer sub.Close()

	waitCtx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = sub.Next(waitCtx)
	var rclErr *Error
	if !errors.As(err, &rclErr) || rclErr.Code != RetTimeout {
		t.Errorf("error = %v, want code %v", err, RetTimeout)
	}
}

func TestSpinStopsOnCancel(t *testing.T) {
	ctx := newTestContext(t)
	node, err := ctx.NewNode("counter")
	if err != nil {
		t.Fatalf("NewNode failed: %v", err)
	}

	sub, err := NewSubscription[sensor.Temperature](node, "readings")
	if err != nil {
		t.Fatalf("NewSubscription failed: %v", err)
	}
	defer sub.Close()

	pub, err := NewPublisher[sensor.Temperature](node, "readings")
	if err != nil {
		t.Fatalf("NewPublisher failed: %v", err)
	}
	for i := range 3 {
		if err := pub.Publish(&sensor.Temperature{Celsius: float64(i)}); err != nil {
			t.Fatalf("publish %d failed: %v", i, err)
		}
	}

	spinCtx, cancel := context.WithCancel(context.Background())
	var count int
	err = sub.Spin(spinCtx, func(*sensor.Temperature) {
		count++
		if count == 3 {
			cancel()
		}
	})
	if err != nil {
		t.Fatalf("spin returned %v, want nil on cancel", err)
	}
	if count != 3 {
		t.Errorf("delivered %d messages, want 3", count)
	}
}

func TestPublishAfterShutdownFails(t *testing.T) {
	ctx, err := NewContext([]string{"test"})
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	node, err := ctx.NewNode("late")
	if err != nil {
		t.Fatalf("NewNode failed: %v", err)
	}
	pub, err := NewPublisher[sensor.Temperature](node, "t")
	if err != nil {
		t.Fatalf("NewPublisher failed: %v", err)
	}

	ctx.Shutdown()

	var rclErr *Error
	err = pub.Publish(&sensor.Temperature{})
	if !errors.As(err, &rclErr) || rclErr.Code != RetPublisherInvalid {
		t.Errorf("error = %v, want code %v", err, RetPublisherInvalid)
	}
}
