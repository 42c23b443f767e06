package progress

import "strings"

const barMarkup = `
<div id="progress__bar">
<style>
  #progress__bar {
    position: fixed;
    width: 0;
    opacity:0;
    top:0;
    left:0;
    z-index: 9000;
    transition: all 500ms ease-in-out;
    border-radius: 0 2px 2px 0;
    box-shadow: 0 1px 3px #696969;
  }
</style>
</div>
`

const fullpageMarkup = `
<div id="progress__fullpage" role="none presentation" tabindex="-1">
  <style>
    #progress__fullpage {
      position: fixed;
      width: 100%;
      height: 100%;
      z-index: 9000;
      opacity: 0;
      display: flex;
      align-items: center;
      justify-content: center;
      transition: opacity 225ms cubic-bezier(0.4, 0, 0.2, 1) 0ms;
    }
    .progress__fullpage__inner{
      padding: 1rem;
      background: #ffffff;
      color:#a9a9a9;
      border-radius: 5px;
      min-width: 100px;
    }
    .progress__fullpage__inner_skeleton svg{
      fill: url(#progress__fullpage__inner_skeleton);
    }
  </style>
  <div class="progress__fullpage__inner">
    <div class="progress__fullpage__inner_skeleton">
      {{svg}}
    </div>
  </div>
</div>
`

// shimmerDefs is the animated gradient referenced by the skeleton fill rule.
const shimmerDefs = `<defs>
  <linearGradient id="progress__fullpage__inner_skeleton">
    <stop offset="0%" stop-color="#a9a9a9" />
    <stop offset="15%" stop-color="#a9a9a9" />
    <stop offset="50%" stop-color="#dbdbdb" />
    <stop offset="85%" stop-color="#a9a9a9" />
    <stop offset="100%" stop-color="#a9a9a9" />
    <animateTransform attributeName="gradientTransform"
      type="translate"
      from="-1 0"
      to="1 0"
      begin="0s"
      dur="1.5s"
      repeatCount="indefinite"/>
  </linearGradient>
</defs>`

func barElement() Element {
	return Element{ID: BarID, Markup: strings.TrimSpace(barMarkup)}
}

func fullpageElement(svg string) Element {
	markup := strings.Replace(fullpageMarkup, "{{svg}}", svg, 1)
	return Element{ID: FullpageID, Markup: strings.TrimSpace(markup)}
}
