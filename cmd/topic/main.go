package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rosmesh/rosidl-runtime/msg/sensor"
	"github.com/rosmesh/rosidl-runtime/rcl"
	"github.com/rosmesh/rosidl-runtime/seq"
)

func main() {
	var (
		topic       = flag.String("topic", "temperature", "Topic name")
		count       = flag.Int("count", 5, "Number of messages to publish")
		interval    = flag.Duration("interval", 200*time.Millisecond, "Publish interval")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		rcl.SetLogger(log)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*topic); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*topic, *count, *interval); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run publishes count readings on topic and echoes them back through an
// in-process subscription.
func run(topic string, count int, interval time.Duration) error {
	rosCtx, err := rcl.NewContext(os.Args)
	if err != nil {
		return err
	}
	defer rosCtx.Shutdown()

	node, err := rosCtx.NewNode("topic_tool")
	if err != nil {
		return err
	}

	sub, err := rcl.NewSubscription[sensor.Temperature](node, topic)
	if err != nil {
		return err
	}
	defer sub.Close()

	pub, err := rcl.NewPublisher[sensor.Temperature](node, topic)
	if err != nil {
		return err
	}

	fmt.Printf("Topic: %s\n", pub.Topic())
	fmt.Printf("Publisher GID: %s\n\n", pub.GID())

	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(count)*interval+5*time.Second)
		defer cancel()
		for i := 0; i < count; i++ {
			msg, err := sub.Next(ctx)
			if err != nil {
				done <- err
				return
			}
			fmt.Printf("received: %.2f°C at %d.%09d\n", msg.Celsius, msg.Stamp.Sec, msg.Stamp.Nanosec)
		}
		done <- nil
	}()

	for i := 0; i < count; i++ {
		now := time.Now()
		reading := sensor.Temperature{
			Stamp:   sensor.Stamp{Sec: int32(now.Unix()), Nanosec: uint32(now.Nanosecond())},
			Celsius: 20 + float64(i)*0.5,
		}
		if err := pub.Publish(&reading); err != nil {
			return err
		}
		time.Sleep(interval)
	}

	if err := <-done; err != nil {
		return err
	}

	// Sequence-bearing messages cross the same path.
	cloud := sensor.PointCloud{
		Points:      seq.Of(sensor.Point{X: 1}, sensor.Point{Y: 2}),
		Intensities: seq.Of[seq.Float32](0.5, 0.25),
	}
	defer cloud.Fini()

	cloudPub, err := rcl.NewPublisher[sensor.PointCloud](node, topic+"/cloud")
	if err != nil {
		return err
	}
	if err := cloudPub.Publish(&cloud); err != nil {
		return err
	}
	fmt.Printf("\npublished point cloud with %d points\n", cloud.Points.Len())
	return nil
}
