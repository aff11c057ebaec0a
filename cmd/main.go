package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bpfocket/go-bpfocket"
)

var debug bool

func main() {
	_ = rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:   "bpfocket",
	Short: "Open a raw packet socket bound to the first active ethernet interface",
	Long:  `Open a raw packet socket bound to the first active ethernet interface and report the descriptor and interface name`,
	Run: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}

		sock, err := bpfocket.New()
		if err != nil {
			log.Fatal(err)
		}
		defer sock.Close()

		fmt.Printf("raw socket fd %d on interface %s\n", sock.Fd(), sock.Ifname())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "print lots of debugging messages")
}
