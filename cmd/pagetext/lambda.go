package main

import "github.com/fwojciec/pagetext/lambda"

// Run hands control to the AWS Lambda runtime.
func (c *LambdaCmd) Run(deps *Dependencies) error {
	lambda.NewHandler(deps.Service, deps.Logger).Start()
	return nil
}
