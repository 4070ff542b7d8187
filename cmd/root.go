package cmd

import (
	platformmeshconfig "github.com/platform-mesh/golang-commons/config"
	"github.com/platform-mesh/golang-commons/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/platform-mesh/backend-resources/pkg/config"
)

var (
	serviceCfg = &config.ServiceConfig{}
	defaultCfg *platformmeshconfig.CommonServiceConfig
	v          *viper.Viper
	log        *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "backend-resources",
	Short: "the platform mesh backend-resources service",
}

func init() {
	rootCmd.AddCommand(serverCmd)

	var err error
	v, defaultCfg, err = platformmeshconfig.NewDefaultConfig(rootCmd)
	if err != nil {
		panic(err)
	}

	err = platformmeshconfig.BindConfigToFlags(v, serverCmd, serviceCfg)
	if err != nil {
		panic(err)
	}

	cobra.OnInitialize(initLog)
}

func initLog() {
	lCfg := logger.DefaultConfig()
	lCfg.Name = "backend-resources"
	lCfg.Level = defaultCfg.Log.Level
	lCfg.NoJSON = defaultCfg.Log.NoJson

	var err error
	log, err = logger.New(lCfg)
	if err != nil {
		panic(err)
	}
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
