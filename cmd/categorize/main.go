package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/clients/awsconf"
	"max.ks1230/smart-receipts/internal/clients/bedrock"
	"max.ks1230/smart-receipts/internal/config"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/receipts"
)

func main() {
	imagePath := flag.String("image", "receipt.jpg", "path to the receipt image")
	categoryList := flag.String("categories", strings.Join(receipts.DefaultCategories, ","), "comma separated category labels")
	flag.Parse()

	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	ctx := context.Background()
	awsCfg, err := awsconf.Load(ctx, conf.AWS())
	if err != nil {
		logger.Fatal("failed to init aws", zap.Error(err))
	}

	categorizer := receipts.NewCategorizer(bedrock.New(awsCfg, conf.Bedrock()))
	category := categorizer.CategorizeFile(ctx, *imagePath, splitCategories(*categoryList))

	fmt.Printf("The receipt is categorized as: %s\n", category)
	logger.Sync()
}

func splitCategories(raw string) []string {
	var res []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			res = append(res, c)
		}
	}
	return res
}
