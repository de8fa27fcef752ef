/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/gofdtd/InputParameters"
)

// ExampleCmd prints the sample scene, ready to be fed back to the 2D command
var ExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print an example scene file",
	Long: `
Print an example scene file: a reflecting box holding a blocking cross,
driven from part of its left wall.

gofdtd example > scene.yaml && gofdtd 2D -I scene.yaml -g`,
	Run: func(cmd *cobra.Command, args []string) {
		fileName, _ := cmd.Flags().GetString("output")
		if err := writeExample(fileName); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func writeExample(fileName string) error {
	if len(fileName) == 0 {
		_, err := fmt.Print(InputParameters.ExampleFile)
		return err
	}
	return os.WriteFile(fileName, []byte(InputParameters.ExampleFile), 0644)
}

func init() {
	rootCmd.AddCommand(ExampleCmd)
	ExampleCmd.Flags().StringP("output", "o", "", "write the example to this file instead of stdout")
}
