package sink

import (
	"bytes"
	"fmt"
)

const (
	popupCSS = `
    .popup { pointer-events: none; transition: opacity 0.15s ease, transform 0.1s ease; }
    .popup[visibility="hidden"] { opacity: 0; }
    .popup[visibility="visible"] { opacity: 1; }`

	popupJS = `
    const psvg = document.querySelector('svg');
    const pvb = psvg.viewBox.baseVal;
    document.querySelectorAll('.arc').forEach(el => {
      const id = el.id.replace('arc-', '');
      const popup = document.querySelector('.popup[data-for="' + id + '"]');
      if (!popup) return;
      el.addEventListener('mouseenter', () => {
        const arcBox = el.getBBox();
        const popupBox = popup.getBBox();
        let x = arcBox.x + arcBox.width/2 - popupBox.width/2;
        let y = arcBox.y + arcBox.height + 12;
        if (y + popupBox.height > pvb.y + pvb.height - 10) y = arcBox.y - popupBox.height - 8;
        if (y < pvb.y + 10) y = pvb.y + 10;
        x = Math.max(pvb.x + 10, Math.min(x, pvb.x + pvb.width - popupBox.width - 10));
        popup.setAttribute('transform', 'translate(' + x.toFixed(1) + ',' + y.toFixed(1) + ')');
        popup.setAttribute('visibility', 'visible');
      });
      el.addEventListener('mouseleave', () => popup.setAttribute('visibility', 'hidden'));
    });`
)

func RenderPopupScript(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", popupCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", popupJS)
}
