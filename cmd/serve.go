package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/hand-scorer/network"
)

func newServeCmd(a *app, v *viper.Viper) *cobra.Command {
	var certOut string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scorer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			address := a.cfg.Server.Address
			l, err := net.Listen("tcp", address)
			if err != nil {
				a.logger.Error("failed to listen on address", "address", address, "error", err)
				return err
			}

			opts := []network.ServerOption{network.WithTimeout(a.cfg.Server.Timeout)}
			if a.cfg.Server.TLS {
				cert, pemBytes, err := network.GenerateSelfSignedCert(l.Addr().String())
				if err != nil {
					l.Close()
					return fmt.Errorf("generate certificate: %w", err)
				}
				if certOut != "" {
					if err := os.WriteFile(certOut, pemBytes, 0o644); err != nil {
						l.Close()
						return err
					}
					a.logger.Info("certificate written", "path", certOut)
				}
				opts = append(opts, network.WithTLS(cert))
			}

			if banner, err := bannerText(); err == nil {
				fmt.Fprint(cmd.OutOrStdout(), banner)
			}
			server := network.NewServer(a.service, a.logger, opts...)
			server.Start(l)
			pterm.Fprintln(cmd.OutOrStdout(), pterm.Info.Sprintf("Listening on %s", l.Addr().String()))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			a.logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Close(shutdownCtx)
		},
	}
	cmd.Flags().String("address", "127.0.0.1:8080", "listen address as host:port")
	cmd.Flags().Bool("tls", false, "serve HTTPS with a self-signed certificate")
	cmd.Flags().Duration("timeout", 10*time.Second, "maximum time spent on each request")
	cmd.Flags().StringVar(&certOut, "cert-out", "", "write the self-signed certificate (PEM) to this path")
	mustBind(v, "server.address", cmd.Flags().Lookup("address"))
	mustBind(v, "server.tls", cmd.Flags().Lookup("tls"))
	mustBind(v, "server.timeout", cmd.Flags().Lookup("timeout"))
	return cmd
}
