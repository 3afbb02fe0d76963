// Package main provides the descent CLI.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/born-ml/descent/nn"
	"github.com/born-ml/descent/optim"
	"github.com/born-ml/descent/tensor"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("descent: ")

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("descent %s\n", version)
	case "demo":
		if err := demo(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
	case "graph":
		fmt.Print(bowl().DOT())
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("descent - gradient-descent update rules")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version               Show version")
	fmt.Println("  demo [kind] [steps]   Minimize a quadratic bowl (kind: sgd, sgdm, rmsprop, adam)")
	fmt.Println("  graph                 Print the demo model as a DOT graph")
}

// demoTarget is the minimum of the demo bowl.
var demoTarget = []float64{3, -1}

// demoConfigs holds hyperparameters that converge on the demo bowl.
var demoConfigs = map[optim.Kind]optim.Config{
	optim.KindSGD:     {LR: 0.1},
	optim.KindSGDM:    {LR: 0.1, Momentum: 0.9},
	optim.KindRMSProp: {LR: 0.01},
	optim.KindAdam:    {LR: 0.01},
}

// bowl returns a one-layer model with weights at the origin.
func bowl() *nn.Model {
	return nn.MustNewModel(
		nn.NewLayer("bowl").MustAddParam("w", tensor.Zeros(tensor.Shape{len(demoTarget)})),
	)
}

func demo(args []string) error {
	kinds := optim.Kinds()
	if len(args) > 0 {
		kind, err := optim.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []optim.Kind{kind}
	}
	steps := 500
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid step count %q", args[1])
		}
		steps = n
	}

	for _, kind := range kinds {
		model := bowl()
		layer := model.Layers()[0]
		optimizer := optim.New(kind, model, demoConfigs[kind])

		target, err := tensor.FromSlice(demoTarget, tensor.Shape{len(demoTarget)})
		if err != nil {
			return err
		}

		var loss float64
		for i := 0; i < steps; i++ {
			var grad *tensor.Tensor
			loss, grad, err = nn.MSELoss(layer.Param("w"), target)
			if err != nil {
				return err
			}
			if err := layer.SetGrad("w", grad); err != nil {
				return err
			}
			if err := optimizer.Step(); err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			optimizer.ZeroGrad()
		}
		converged := tensor.AllClose(layer.Param("w"), target, 1e-2)
		fmt.Printf("%-8s steps=%d loss=%.6f w=%.4f converged=%t\n", kind, steps, loss, layer.Param("w").Data(), converged)
	}
	return nil
}
