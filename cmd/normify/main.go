// Command normify translates instrument names between venue and canonical form.
//
//	normify normalize -exchange deribit -market o BTC-28MAR25-100000-C
//	normify denormalize o.o.BTC-USD-20250328-100000-C.deribit
//	normify parse o.p.BTC-USD.dydx
//	normify expired o.f.BTC-USD-20250328.deribit
//	normify venues
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Checker-Finance/normify/internal/translate"
	"github.com/Checker-Finance/normify/pkg/config"
	"github.com/Checker-Finance/normify/pkg/logger"
)

const usage = `usage:
  normify normalize -exchange NAME -market TYPE [-json] VENUE_NAME
  normify denormalize [-json] CANONICAL
  normify parse [-json] CANONICAL
  normify expired [-json] CANONICAL
  normify venues
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger.Init("normify", "prod", config.GetEnv("LOG_LEVEL", "warn"))
	defer logger.Sync()

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	svc := translate.NewService(logger.L())
	cmd, rest := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print the full JSON response")

	var req translate.Request
	switch cmd {
	case translate.OpNormalize:
		ex := fs.String("exchange", "", "exchange name, e.g. deribit")
		mt := fs.String("market", "", "market type: o, p, t, f or a full name")
		if err := fs.Parse(rest); err != nil {
			return 2
		}
		req = translate.Request{Op: cmd, Exchange: *ex, MarketType: *mt, Name: fs.Arg(0)}
	case translate.OpDenormalize, translate.OpParse, translate.OpExpired:
		if err := fs.Parse(rest); err != nil {
			return 2
		}
		req = translate.Request{Op: cmd, Instrument: fs.Arg(0)}
	case "venues":
		return printVenues(stdout)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", cmd, usage)
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	resp := svc.Handle(context.Background(), req)
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(resp)
	} else if resp.OK {
		fmt.Fprintln(stdout, summary(resp))
	}

	if !resp.OK {
		logger.L().Debug("normify.cli.failed", zap.String("op", resp.Op), zap.String("error_kind", resp.ErrorKind))
		fmt.Fprintf(stderr, "%s: %s\n", resp.ErrorKind, resp.Error)
		return 1
	}
	return 0
}

func summary(resp translate.Response) string {
	switch resp.Op {
	case translate.OpDenormalize:
		return resp.Name
	case translate.OpExpired:
		if resp.Expiry == "" {
			return "false (no expiry)"
		}
		return strconv.FormatBool(*resp.Expired) + " (" + resp.Expiry + ")"
	case translate.OpParse:
		d := resp.Details
		fields := []string{
			"exchange=" + d.Exchange,
			"market_type=" + d.MarketType,
			"kind=" + d.Kind,
			"base=" + d.Base,
			"quote=" + d.Quote,
		}
		if d.Expiry != "" {
			fields = append(fields, "expiry="+d.Expiry)
		}
		if d.OptionType != "" {
			fields = append(fields, "strike="+strconv.FormatUint(d.Strike, 10), "option_type="+d.OptionType)
		}
		return strings.Join(fields, " ")
	default:
		return resp.Instrument
	}
}

func printVenues(w io.Writer) int {
	for _, v := range translate.Venues() {
		fmt.Fprintf(w, "%-8s market_types=%s kinds=%s\n",
			v.Exchange, strings.Join(v.MarketTypes, ","), strings.Join(v.Kinds, ","))
	}
	return 0
}
